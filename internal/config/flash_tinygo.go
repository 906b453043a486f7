//go:build tinygo

package config

import (
	"io"

	"tinygo.org/x/tinyfs"
	"tinygo.org/x/tinyfs/littlefs"
)

// Flash is a littlefs filesystem mounted on a block device, normally machine.Flash.
type Flash struct {
	lfs *littlefs.LFS
}

// Mount mounts the littlefs filesystem on dev. It never formats: a blank flash just has no settings file.
func Mount(dev tinyfs.BlockDevice) (*Flash, error) {
	lfs := littlefs.New(dev)
	lfs.Configure(&littlefs.Config{
		CacheSize:     512,
		LookaheadSize: 512,
		BlockCycles:   100,
	})
	if err := lfs.Mount(); err != nil {
		return nil, err
	}
	return &Flash{lfs: lfs}, nil
}

func (f *Flash) Open(path string) (io.ReadCloser, error) {
	return f.lfs.Open(path)
}

func (f *Flash) Unmount() error {
	return f.lfs.Unmount()
}
