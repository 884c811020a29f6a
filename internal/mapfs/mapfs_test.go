/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs

import (
	"io/fs"
	"testing"
)

func TestMapFileSystem_AbsolutePaths(t *testing.T) {
	mfs := New()
	mfs.AddFile("/project/src/main/java/com/foo/Bar.java", "class Bar {}", 0644)
	mfs.AddDir("/project/empty", 0755)

	if !mfs.Exists("/project/src/main/java") {
		t.Error("expected implicit directory to exist")
	}
	if !mfs.Exists("/project/empty") {
		t.Error("expected explicit directory to exist")
	}
	if mfs.Exists("/project/missing") {
		t.Error("expected missing path not to exist")
	}

	info, err := mfs.Stat("/project/src/main/java/com/foo")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory")
	}

	entries, err := mfs.ReadDir("/project/src/main/java/com/foo")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "Bar.java" {
		t.Errorf("unexpected entries: %v", entries)
	}

	data, err := mfs.ReadFile("/project/src/main/java/com/foo/Bar.java")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "class Bar {}" {
		t.Errorf("ReadFile() = %q", data)
	}

	var walked []string
	err = fs.WalkDir(mfs, "/project", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			walked = append(walked, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir() error = %v", err)
	}
	if len(walked) != 1 || walked[0] != "/project/src/main/java/com/foo/Bar.java" {
		t.Errorf("WalkDir() visited %v", walked)
	}

	files := mfs.ListFiles()
	if len(files) != 1 || files[0] != "/project/src/main/java/com/foo/Bar.java" {
		t.Errorf("ListFiles() = %v", files)
	}
}
