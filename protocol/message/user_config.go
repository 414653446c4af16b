package message

import (
	"encoding/json"
	"fmt"
)

// UserConfig holds the settings a bulb reports for getUserConfig.  Each range
// keeps the order the bulb sent it in.
type UserConfig struct {
	FadeIn         uint32    `json:"fadeIn"`
	FadeOut        uint32    `json:"fadeOut"`
	FadeNight      bool      `json:"fadeNight"`
	DefaultDimming uint32    `json:"dftDim"`
	PWMRange       [2]uint32 `json:"pwmRange"`
	WhiteRange     [2]uint32 `json:"whiteRange"`
	ExtRange       [2]uint32 `json:"extRange"`
	PowerOutput    bool      `json:"po"`
}

var userConfigFields = []string{
	`fadeIn`, `fadeOut`, `fadeNight`, `dftDim`,
	`pwmRange`, `whiteRange`, `extRange`, `po`,
}

// encoding/json pads or truncates fixed size arrays, so ranges are checked
// before decoding into UserConfig
var userConfigRanges = []string{`pwmRange`, `whiteRange`, `extRange`}

func decodeUserConfig(data json.RawMessage) (UserConfig, error) {
	cfg := UserConfig{}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return cfg, parseError(err)
	}
	for _, name := range userConfigFields {
		if v, ok := fields[name]; !ok || string(v) == `null` {
			return cfg, fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}
	for _, name := range userConfigRanges {
		var values []uint32
		if err := json.Unmarshal(fields[name], &values); err != nil {
			return cfg, parseError(err)
		}
		if len(values) != 2 {
			return cfg, fmt.Errorf("%w: %s has %d values", ErrInvalidRange, name, len(values))
		}
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, parseError(err)
	}
	return cfg, nil
}
