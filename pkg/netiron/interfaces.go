package netiron

import (
	"fmt"
	"net/netip"

	"github.com/hknutzen/textfsm/pkg/textfsm"
)

// InterfaceIP describes addresses of a single interface.
// Maps address to prefix length.
type InterfaceIP struct {
	IPv4 map[string]int `json:"ipv4" yaml:"ipv4"`
	IPv6 map[string]int `json:"ipv6" yaml:"ipv6"`
	Vrf  string         `json:"vrf,omitempty" yaml:"vrf,omitempty"`
	ACL  string         `json:"interfaceacl,omitempty" yaml:"interfaceacl,omitempty"`
}

// InterfacesIP converts output of "show running-config interface".
func InterfacesIP(output string) (map[string]*InterfaceIP, error) {
	records, err := Extractor.Records("show_running_config_interface", output)
	if err != nil {
		return nil, err
	}
	result := make(map[string]*InterfaceIP)
	for _, r := range records {
		port := StandardizeInterfaceName(r.Get("Interface") + r.Get("InterfaceNum"))
		intf := result[port]
		if intf == nil {
			intf = &InterfaceIP{
				IPv4: make(map[string]int),
				IPv6: make(map[string]int),
			}
			result[port] = intf
		}
		if err := addPrefixes(intf.IPv4, r, "Ipv4address"); err != nil {
			return nil, err
		}
		if err := addPrefixes(intf.IPv6, r, "Ipv6address"); err != nil {
			return nil, err
		}
		if v := r.Get("VrfName"); v != "" {
			intf.Vrf = v
		}
		if v := r.Get("InterfaceAcl"); v != "" {
			intf.ACL = v
		}
	}
	return result, nil
}

func addPrefixes(m map[string]int, r textfsm.Record, name string) error {
	for _, s := range r.List(name) {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return fmt.Errorf("Invalid address of interface %s%s: %v",
				r.Get("Interface"), r.Get("InterfaceNum"), err)
		}
		m[p.Addr().String()] = p.Bits()
	}
	return nil
}
