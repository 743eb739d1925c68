// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package meminfo

import (
	"context"
	"testing"

	"github.com/MKhiriev/memfill/internal/mock"
	"github.com/MKhiriev/memfill/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCgroupProvider_Limited(t *testing.T) {
	ctrl := gomock.NewController(t)
	cg := mock.NewMockCgroupReader(ctrl)
	sys := mock.NewMockProvider(ctrl)

	cg.EXPECT().Memory().Return(models.CgroupMemory{Usage: 300, Limit: 1000}, nil)
	// system memory must not be consulted for a limited cgroup
	sys.EXPECT().MemInfo(gomock.Any()).Times(0)

	info, err := NewCgroupProvider(cg, sys).MemInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.MemInfo{Available: 700, Total: 1000}, info)
}

func TestCgroupProvider_UnlimitedFallsBackToSystemTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	cg := mock.NewMockCgroupReader(ctrl)
	sys := mock.NewMockProvider(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		cg.EXPECT().Memory().Return(models.CgroupMemory{Usage: 100, Unlimited: true}, nil),
		sys.EXPECT().MemInfo(ctx).Return(models.MemInfo{Available: 5, Total: 4000}, nil),
	)

	info, err := NewCgroupProvider(cg, sys).MemInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4000), info.Total)
	assert.Equal(t, uint64(3900), info.Available)
}

func TestCgroupProvider_UsageAboveLimitSaturates(t *testing.T) {
	ctrl := gomock.NewController(t)
	cg := mock.NewMockCgroupReader(ctrl)

	cg.EXPECT().Memory().Return(models.CgroupMemory{Usage: 1200, Limit: 1000}, nil)

	info, err := NewCgroupProvider(cg, mock.NewMockProvider(ctrl)).MemInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), info.Available)
}

func TestCgroupProvider_Errors(t *testing.T) {
	t.Run("cgroup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cg := mock.NewMockCgroupReader(ctrl)
		cg.EXPECT().Memory().Return(models.CgroupMemory{}, assert.AnError)

		_, err := NewCgroupProvider(cg, mock.NewMockProvider(ctrl)).MemInfo(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("system", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cg := mock.NewMockCgroupReader(ctrl)
		sys := mock.NewMockProvider(ctrl)
		cg.EXPECT().Memory().Return(models.CgroupMemory{Unlimited: true}, nil)
		sys.EXPECT().MemInfo(gomock.Any()).Return(models.MemInfo{}, assert.AnError)

		_, err := NewCgroupProvider(cg, sys).MemInfo(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}
