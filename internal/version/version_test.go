package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	v, c, d := Info()
	switch {
	case v == "":
		t.Error("version should not be empty")
	case c == "":
		t.Error("commit should not be empty")
	case d == "":
		t.Error("date should not be empty")
	}
}

func TestAccessorsMatchInfo(t *testing.T) {
	v, c, d := Info()
	if Version() != v {
		t.Errorf("Version (%s) should match Info version (%s)", Version(), v)
	}
	if Commit() != c {
		t.Errorf("Commit (%s) should match Info commit (%s)", Commit(), c)
	}
	if Date() != d {
		t.Errorf("Date (%s) should match Info date (%s)", Date(), d)
	}
}

func TestString(t *testing.T) {
	s := String()
	switch {
	case !strings.Contains(s, "version="):
		t.Error("String should contain 'version='")
	case !strings.Contains(s, "commit="):
		t.Error("String should contain 'commit='")
	case !strings.Contains(s, "date="):
		t.Error("String should contain 'date='")
	}
}
