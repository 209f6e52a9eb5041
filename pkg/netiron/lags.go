package netiron

// Lag is a link aggregation group.
type Lag struct {
	Description string   `json:"description" yaml:"description"`
	Children    []string `json:"children" yaml:"children"`
}

// Lags converts output of "show running-config lag".
// Keys of result are "lagID".
func Lags(runningConfigLag string) (map[string]*Lag, error) {
	records, err := Extractor.Records("show_running_config_lag", runningConfigLag)
	if err != nil {
		return nil, err
	}
	result := make(map[string]*Lag)
	for _, r := range records {
		children, err := InterfacesToList(r.Get("Ports"))
		if err != nil {
			return nil, err
		}
		result["lag"+r.Get("Id")] = &Lag{
			Description: r.Get("Name"),
			Children:    children,
		}
	}
	return result, nil
}
