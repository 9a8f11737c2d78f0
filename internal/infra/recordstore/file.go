package recordstore

import (
	"os"
	"path/filepath"
)

// stagedFile is an encoded document written next to its target, waiting to
// be renamed over it.
type stagedFile struct {
	target string
	temp   string
}

func stage(target string, data []byte) (stagedFile, error) {
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return stagedFile{}, err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return stagedFile{}, err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return stagedFile{}, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return stagedFile{}, err
	}

	if info, err := os.Stat(target); err == nil {
		_ = os.Chmod(tmp, info.Mode().Perm())
	}

	return stagedFile{target: target, temp: tmp}, nil
}

func (s stagedFile) commit() error {
	return os.Rename(s.temp, s.target)
}

func (s stagedFile) discard() {
	_ = os.Remove(s.temp)
}
