package osrelease

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseMinimal(t *testing.T) {
	rel, err := Parse(strings.NewReader("ID=fedora\nNAME=\"Fedora Linux\"\nVERSION_ID=39\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if rel.ID != "fedora" {
		t.Errorf("ID = %q, want %q", rel.ID, "fedora")
	}
	if rel.Name != "Fedora Linux" {
		t.Errorf("Name = %q, want %q", rel.Name, "Fedora Linux")
	}
	if rel.VersionID != "39" {
		t.Errorf("VersionID = %q, want %q", rel.VersionID, "39")
	}
	if rel.PrettyName != "" {
		t.Errorf("PrettyName = %q, want empty", rel.PrettyName)
	}
}

func TestParseQuotingAndLists(t *testing.T) {
	content := `
# full fedora-style file
NAME="Fedora Linux"
VERSION="39 (Workstation Edition)"
ID=fedora
ID_LIKE="rhel centos"
VERSION_CODENAME=""
ANSI_COLOR="0;38;2;60;110;180"
HOME_URL="https://fedoraproject.org/"
LOGO=fedora-logo-icon
SYSEXT_SCOPE="system portable"
ESCAPED="a \"quoted\" \$value"
`
	rel, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got, want := rel.Version, "39 (Workstation Edition)"; got != want {
		t.Errorf("Version = %q, want %q", got, want)
	}
	if got, want := rel.IDLike, []string{"rhel", "centos"}; !reflect.DeepEqual(got, want) {
		t.Errorf("IDLike = %v, want %v", got, want)
	}
	if rel.VersionCodename != "" {
		t.Errorf("VersionCodename = %q, want empty", rel.VersionCodename)
	}
	if got, want := rel.SysextScope, []string{"system", "portable"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SysextScope = %v, want %v", got, want)
	}
	if got, want := rel.Extra["ESCAPED"], `a "quoted" $value`; got != want {
		t.Errorf("Extra[ESCAPED] = %q, want %q", got, want)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "line without equals", content: "ID=fedora\nNAME Fedora\n"},
		{name: "missing required NAME", content: "ID=fedora\nVERSION_ID=39\n"},
		{name: "missing required ID", content: "NAME=Fedora\n"},
		{name: "empty file", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.content)); err == nil {
				t.Error("Parse() expected error, got nil")
			}
		})
	}
}

func TestReleaseString(t *testing.T) {
	tests := []struct {
		name string
		rel  Release
		want string
	}{
		{name: "pretty name wins", rel: Release{Name: "Fedora Linux", PrettyName: "Fedora Linux 39"}, want: "Fedora Linux 39"},
		{name: "name plus version", rel: Release{Name: "Debian GNU/Linux", Version: "12 (bookworm)"}, want: "Debian GNU/Linux 12 (bookworm)"},
		{name: "name only", rel: Release{Name: "Arch Linux"}, want: "Arch Linux"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rel.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
