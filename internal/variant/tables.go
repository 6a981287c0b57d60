package variant

// LinuxVariant describes one Linux Bash build.
type LinuxVariant struct {
	Name string
	// IDs match against os-release ID or any ID_LIKE entry.
	IDs []string
	// Versions are VERSION_ID prefixes.
	Versions []string
}

// DarwinVariant describes one macOS Bash build.
type DarwinVariant struct {
	Name      string
	MinDarwin int
}

// LinuxVariants is ordered; selection takes the first match and falls back to the first entry.
var LinuxVariants = []LinuxVariant{
	{Name: "ubuntu-24.04", IDs: []string{"ubuntu"}, Versions: []string{"24.04"}},
	{Name: "ubuntu-22.04", IDs: []string{"ubuntu"}, Versions: []string{"22.04"}},
	{Name: "ubuntu-20.04", IDs: []string{"ubuntu"}, Versions: []string{"20.04"}},
	{Name: "debian-12", IDs: []string{"debian"}, Versions: []string{"12"}},
	{Name: "debian-11", IDs: []string{"debian"}, Versions: []string{"11"}},
	{Name: "centos-9", IDs: []string{"centos", "rhel", "rocky", "almalinux"}, Versions: []string{"9"}},
}

// DarwinVariants is ordered from newest to oldest.
var DarwinVariants = []DarwinVariant{
	{Name: "macos-15", MinDarwin: 24},
	{Name: "macos-14", MinDarwin: 23},
	{Name: "macos-13", MinDarwin: 22},
}

// LinuxNames returns the variant names of table in order.
func LinuxNames(table []LinuxVariant) []string {
	names := make([]string, 0, len(table))
	for _, v := range table {
		names = append(names, v.Name)
	}
	return names
}

// DarwinNames returns the variant names of table in order.
func DarwinNames(table []DarwinVariant) []string {
	names := make([]string, 0, len(table))
	for _, v := range table {
		names = append(names, v.Name)
	}
	return names
}
