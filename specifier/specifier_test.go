/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     Kind
		path     string
		absolute string
		dir      string
		base     string
	}{
		{"bare name", "MyTest-context.xml", KindRelative, "MyTest-context.xml", "", "", "MyTest-context.xml"},
		{"relative path", "com/foo/Bar.java", KindRelative, "com/foo/Bar.java", "", "com/foo", "Bar.java"},
		{"backslashes", `com\foo\Bar.java`, KindRelative, "com/foo/Bar.java", "", "com/foo", "Bar.java"},
		{"dot prefix", "./conf/app.yaml", KindRelative, "conf/app.yaml", "", "conf", "app.yaml"},
		{"absolute", "/etc/hosts", KindAbsolute, "etc/hosts", "/etc/hosts", "etc", "hosts"},
		{"classpath", "classpath:com/foo/beans.xml", KindClasspath, "com/foo/beans.xml", "", "com/foo", "beans.xml"},
		{"classpath star", "classpath*:/META-INF/spring.xml", KindClasspath, "META-INF/spring.xml", "", "META-INF", "spring.xml"},
		{"file url", "file:///tmp/data.csv", KindFileURL, "tmp/data.csv", "/tmp/data.csv", "tmp", "data.csv"},
		{"file relative", "file:data.csv", KindFileURL, "data.csv", "", "", "data.csv"},
		{"only slash", "/", KindAbsolute, "", "/", "", ""},
		{"class name", "com.foo.Bar", KindRelative, "com.foo.Bar", "", "", "com.foo.Bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Parse(tt.input)
			if spec.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", spec.Kind, tt.kind)
			}
			if spec.Path != tt.path {
				t.Errorf("Path = %q, want %q", spec.Path, tt.path)
			}
			if spec.Absolute != tt.absolute {
				t.Errorf("Absolute = %q, want %q", spec.Absolute, tt.absolute)
			}
			if spec.Dir() != tt.dir {
				t.Errorf("Dir() = %q, want %q", spec.Dir(), tt.dir)
			}
			if spec.Name() != tt.base {
				t.Errorf("Name() = %q, want %q", spec.Name(), tt.base)
			}
			if spec.Raw != tt.input {
				t.Errorf("Raw = %q, want %q", spec.Raw, tt.input)
			}
		})
	}
}

func TestIsQualifiedName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"com.foo.Bar", true},
		{"Bar", true},
		{"com.foo.Outer$Inner", true},
		{"_internal.Impl2", true},
		{"com/foo/Bar.java", false},
		{"Bar.java.", false},
		{".Bar", false},
		{"com.1foo.Bar", false},
		{"my-context.xml", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsQualifiedName(tt.input); got != tt.want {
			t.Errorf("IsQualifiedName(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSimpleName(t *testing.T) {
	if got := SimpleName("com.foo.Bar"); got != "Bar" {
		t.Errorf("SimpleName() = %q, want %q", got, "Bar")
	}
	if got := SimpleName("Bar"); got != "Bar" {
		t.Errorf("SimpleName() = %q, want %q", got, "Bar")
	}
}
