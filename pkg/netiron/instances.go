package netiron

import (
	"golang.org/x/exp/slices"
)

const defaultInstance = "default"

// NetworkInstance is the default routing instance or a VRF.
type NetworkInstance struct {
	Name               string   `json:"name" yaml:"name"`
	Type               string   `json:"type" yaml:"type"`
	RouteDistinguisher string   `json:"route_distinguisher" yaml:"route_distinguisher"`
	Interfaces         []string `json:"interfaces" yaml:"interfaces"`
}

// NetworkInstances combines output of "show vrf detail" and
// "show ip interface".
func NetworkInstances(vrfDetail, ipInterface string) (
	map[string]*NetworkInstance, error) {

	vrfs, err := Extractor.Records("show_vrf_detail", vrfDetail)
	if err != nil {
		return nil, err
	}
	intfs, err := Extractor.Records("show_ip_interface", ipInterface)
	if err != nil {
		return nil, err
	}
	result := map[string]*NetworkInstance{
		defaultInstance: {Name: defaultInstance, Type: "DEFAULT_INSTANCE"},
	}
	for _, r := range vrfs {
		name := r.Get("Name")
		result[name] = &NetworkInstance{
			Name:               name,
			Type:               "L3VRF",
			RouteDistinguisher: r.Get("Rd"),
		}
	}
	for _, r := range intfs {
		port := StandardizeInterfaceName(r.Get("InterfaceType") + r.Get("InterfaceNum"))
		vrf := r.Get("Vrf")
		if vrf == "default-vrf" {
			vrf = defaultInstance
		}
		inst := result[vrf]
		if inst == nil {
			// VRF without details, e.g. if output was truncated.
			inst = &NetworkInstance{Name: vrf, Type: "L3VRF"}
			result[vrf] = inst
		}
		if !slices.Contains(inst.Interfaces, port) {
			inst.Interfaces = append(inst.Interfaces, port)
		}
	}
	for _, inst := range result {
		slices.Sort(inst.Interfaces)
	}
	return result, nil
}
