package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files and honours SkipDir", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.go")
		writeTestFile(t, child, "package nested\n")

		skipped := filepath.Join(root, "skipped")
		mustMkdir(t, skipped)
		writeTestFile(t, filepath.Join(skipped, "hidden.go"), "package skipped\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && path == skipped {
				return filepath.SkipDir
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file")
		}

		if containsPath(visited, filepath.Join(skipped, "hidden.go")) {
			t.Fatalf("Walk() visited a file below a skipped directory")
		}
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.go"), "package main\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(root), func(string, os.FileInfo, error) error {
			return nil
		})
		if err == nil {
			t.Fatalf("Walk() expected error for cancelled context")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	content := "package main\n" + "func main() {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	writeTestFile(t, path, "package main\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_MkdirAllAndRemoveAll(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := adapter.MkdirAll(ctx, m.Path(dir)); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("MkdirAll() did not create directory, stat err=%v", err)
	}

	writeTestFile(t, filepath.Join(dir, "file.go"), "package main\n")

	if err := adapter.RemoveAll(ctx, m.Path(dir)); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("RemoveAll() did not remove directory, stat err=%v", err)
	}
}

func TestLocalSourceFSAdapter_CopyFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	src := filepath.Join(t.TempDir(), "main.go")
	writeTestFile(t, src, "package main\n")

	dst := filepath.Join(t.TempDir(), "mirror", "pkg", "main.go")
	if err := adapter.CopyFile(context.Background(), m.Path(src), m.Path(dst)); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("CopyFile() did not create destination: %v", err)
	}

	if string(got) != "package main\n" {
		t.Fatalf("CopyFile() content = %q", string(got))
	}
}

func TestLocalSourceFSAdapter_CopyFileReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	adapter := NewLocalSourceFSAdapter()

	src := filepath.Join(t.TempDir(), "main.go")
	writeTestFile(t, src, "package main\n")

	if err := adapter.CopyFile(context.Background(), m.Path(src), "/dev/full"); err == nil {
		t.Fatalf("CopyFile() expected error when the destination device is full")
	}
}

func TestLocalSourceFSAdapter_CopyDirAndWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	src := t.TempDir()
	dst := t.TempDir()

	subDir := filepath.Join(src, "sub")
	mustMkdir(t, subDir)
	filePath := filepath.Join(subDir, "main.go")
	writeTestFile(t, filePath, "package main\n")

	// Additional file written via adapter.WriteFile
	extraFile := filepath.Join(src, "extra.go")
	if err := adapter.WriteFile(ctx, m.Path(extraFile), []byte("package extra\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := adapter.CopyDir(ctx, m.Path(src), m.Path(dst)); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "sub", "main.go")); err != nil {
		t.Fatalf("CopyDir() did not copy nested file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "extra.go")); err != nil {
		t.Fatalf("CopyDir() did not copy top-level file: %v", err)
	}
}

func TestLocalSourceFSAdapter_Rename(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	from := filepath.Join(root, "a.json")
	to := filepath.Join(root, "b.json")
	writeTestFile(t, from, "{}")
	writeTestFile(t, to, "old")

	if err := adapter.Rename(context.Background(), m.Path(from), m.Path(to)); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	got, err := os.ReadFile(to)
	if err != nil || string(got) != "{}" {
		t.Fatalf("Rename() destination = %q, err = %v", string(got), err)
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/sub/dir/file.go")

	rel, err := adapter.RelPath(ctx, base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("sub", "dir", "file.go") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("sub", "dir", "file.go"))
	}

	joined := adapter.JoinPath(ctx, "/tmp", "project", "sub", "file.go")
	if string(joined) != filepath.Join("/tmp", "project", "sub", "file.go") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "project", "sub", "file.go"))
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
