package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file's path to name its backup.
const BackupSuffix = ".bak"

// Backup copies the file at path to path+BackupSuffix, replacing any older
// backup, and returns the backup path. A missing file needs no backup and
// yields "".
func Backup(ctx context.Context, path string) (string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	content, err := ReadFile(ctx, path)
	if err != nil {
		return "", err
	}

	backupPath := path + BackupSuffix
	if err := WriteAtomic(ctx, backupPath, content, stat.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	return backupPath, nil
}
