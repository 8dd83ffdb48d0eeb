package data

import "testing"

func TestParsePath(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		segments []string
		absolute bool
	}{
		{"absolute", "/user/name", []string{"user", "name"}, true},
		{"relative", "user/name", []string{"user", "name"}, false},
		{"root", "/", nil, true},
		{"empty", "", nil, false},
		{"repeated separators collapse", "//a///b/", []string{"a", "b"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ParsePath(tc.in)
			if p.IsAbsolute() != tc.absolute {
				t.Errorf("IsAbsolute() = %v, want %v", p.IsAbsolute(), tc.absolute)
			}
			got := p.Segments()
			if len(got) != len(tc.segments) {
				t.Fatalf("Segments() = %v, want %v", got, tc.segments)
			}
			for i, s := range tc.segments {
				if got[i] != s {
					t.Errorf("segment %d = %q, want %q", i, got[i], s)
				}
			}
		})
	}
}

func TestPathString(t *testing.T) {
	for _, in := range []string{"/user/name", "user/name", "/", ""} {
		p := ParsePath(in)
		round := ParsePath(p.String())
		if !p.Equal(round) {
			t.Errorf("ParsePath(%q).String() = %q did not round-trip", in, p.String())
		}
	}
}

func TestPathJoin(t *testing.T) {
	base := ParsePath("/items/0")

	t.Run("relative appends", func(t *testing.T) {
		joined := base.Join(ParsePath("title"))
		if joined.String() != "/items/0/title" {
			t.Errorf("got %q", joined.String())
		}
	})

	t.Run("absolute replaces", func(t *testing.T) {
		joined := base.Join(ParsePath("/other"))
		if joined.String() != "/other" {
			t.Errorf("got %q", joined.String())
		}
	})
}

func TestPathStartsWith(t *testing.T) {
	cases := []struct {
		p, prefix string
		want      bool
	}{
		{"/items/0/title", "/items", true},
		{"/items/0/title", "/items/0/title", true},
		{"/items", "/items/0", false},
		{"/items/0", "/other", false},
		{"/anything", "/", true},
	}
	for _, tc := range cases {
		got := ParsePath(tc.p).StartsWith(ParsePath(tc.prefix))
		if got != tc.want {
			t.Errorf("StartsWith(%q, %q) = %v, want %v", tc.p, tc.prefix, got, tc.want)
		}
	}
}

func TestPathBasenameDirname(t *testing.T) {
	p := ParsePath("/user/address/city")
	if p.Basename() != "city" {
		t.Errorf("Basename() = %q", p.Basename())
	}
	if p.Dirname().String() != "/user/address" {
		t.Errorf("Dirname() = %q", p.Dirname().String())
	}
	if RootPath().Basename() != "" {
		t.Error("root Basename should be empty")
	}
	if !RootPath().Dirname().Equal(RootPath()) {
		t.Error("root Dirname should stay root")
	}
}

func TestPathEqual(t *testing.T) {
	if ParsePath("/a/b").Equal(ParsePath("a/b")) {
		t.Error("absolute and relative should differ")
	}
	if !ParsePath("/a/b").Equal(NewPath(true, "a", "b")) {
		t.Error("parse and build should agree")
	}
}
