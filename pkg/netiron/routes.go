package netiron

import (
	"strconv"

	"github.com/hknutzen/textfsm/pkg/textfsm"
)

// Administrative distance of static route, if not configured.
const defaultDistance = 1

type StaticRoute struct {
	// Empty for global routes.
	Vrf      string `json:"vrf,omitempty" yaml:"vrf,omitempty"`
	Prefix   string `json:"prefix" yaml:"prefix"`
	NextHop  string `json:"next_hop" yaml:"next_hop"`
	Distance int    `json:"distance" yaml:"distance"`
}

// StaticRoutes extracts global static routes followed by
// static routes of VRFs from output of "show running-config".
func StaticRoutes(runningConfig string) ([]StaticRoute, error) {
	global, err := Extractor.Records("static_route_details", runningConfig)
	if err != nil {
		return nil, err
	}
	inVrf, err := Extractor.Records("vrf_static_route_details", runningConfig)
	if err != nil {
		return nil, err
	}
	var result []StaticRoute
	for _, r := range append(global, inVrf...) {
		rt, err := toRoute(r)
		if err != nil {
			return nil, err
		}
		result = append(result, rt)
	}
	return result, nil
}

func toRoute(r textfsm.Record) (StaticRoute, error) {
	rt := StaticRoute{
		Vrf:      r.Get("Vrf"),
		Prefix:   r.Get("Prefix"),
		NextHop:  r.Get("NextHop"),
		Distance: defaultDistance,
	}
	if d := r.Get("Distance"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			return rt, err
		}
		rt.Distance = n
	}
	return rt, nil
}
