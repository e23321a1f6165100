package ports

import "time"

// Stamper reports filesystem freshness for path targets.
//
//go:generate go run go.uber.org/mock/mockgen -source=stamper.go -destination=mocks/mock_stamper.go -package=mocks
type Stamper interface {
	// Stamp returns the modification time of path. exists is false when
	// the path is absent, which makes the target always stale.
	Stamp(path string) (mtime time.Time, exists bool, err error)
}
