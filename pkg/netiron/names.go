package netiron

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var nameConversions = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`^lb(\d+)$`), "Loopback$1"},
	{regexp.MustCompile(`^loopback(\d+)$`), "Loopback$1"},
	{regexp.MustCompile(`^tn(\d+)$`), "Tunnel$1"},
	{regexp.MustCompile(`^gre-tnl(\d+)$`), "Tunnel$1"},
	{regexp.MustCompile(`^ve(\d+)$`), "Ve$1"},
}

var slotPort = regexp.MustCompile(`(\d+/\d+)$`)

// StandardizeInterfaceName converts abbreviated names of interfaces
// into names shown by "show interface".
// Physical ports "1/1", "e1/1", "eth1/1" become "ethernet1/1".
func StandardizeInterfaceName(port string) string {
	port = strings.TrimSpace(port)
	for _, c := range nameConversions {
		if c.re.MatchString(port) {
			return c.re.ReplaceAllString(port, c.repl)
		}
	}
	switch port {
	case "mgmt1", "management1":
		return "Ethernetmgmt1"
	}
	if m := slotPort.FindStringSubmatch(port); m != nil {
		return "ethernet" + m[1]
	}
	return port
}

// InterfacesToList expands list of ports like "ethe 2/1 ethe 2/4 to 2/6"
// or "e 2/1 to 2/4".
func InterfacesToList(ports string) ([]string, error) {
	sep := "e"
	switch {
	case strings.Contains(ports, "ethernet"):
		sep = "ethernet"
	case strings.Contains(ports, "ethe"):
		sep = "ethe"
	}
	var result []string
	for _, section := range strings.Split(ports, sep) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		first, last, isRange := strings.Cut(section, " to ")
		if !isRange {
			result = append(result, StandardizeInterfaceName(section))
			continue
		}
		slot, from, err := splitPort(first)
		if err != nil {
			return nil, err
		}
		slot2, to, err := splitPort(last)
		if err != nil {
			return nil, err
		}
		if slot != slot2 || from > to {
			return nil, fmt.Errorf("Invalid range of ports: %q", section)
		}
		for n := from; n <= to; n++ {
			result = append(result, StandardizeInterfaceName(
				fmt.Sprintf("%s/%d", slot, n)))
		}
	}
	return result, nil
}

func splitPort(s string) (string, int, error) {
	slot, num, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found {
		return "", 0, fmt.Errorf("Expected SLOT/PORT: %q", s)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return "", 0, fmt.Errorf("Expected SLOT/PORT: %q", s)
	}
	return slot, n, nil
}
