package app

//go:generate mockgen -source=interfaces.go -destination=../mock/app_mock.go -package=mock

// ChunkPool is the part of allocator.Pool the controller needs.
type ChunkPool interface {
	Len() int
	Release() uint64
}

// OOMScoreAdjuster sets the OOM score of the controller process.
type OOMScoreAdjuster interface {
	Adjust() (int, error)
}
