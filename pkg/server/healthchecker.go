package server

import (
	"context"
	"os"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// DirHealthChecker reports healthy while Dir exists and is a directory.
type DirHealthChecker struct {
	Dir string
}

func NewDirHealthChecker(dir string) *DirHealthChecker {
	return &DirHealthChecker{Dir: dir}
}

func (hc *DirHealthChecker) Healthy(_ context.Context) bool {
	info, err := os.Stat(hc.Dir)
	return err == nil && info.IsDir()
}
