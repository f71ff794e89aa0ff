package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	_ "github.com/expki/go-dataminer/env"
)

// ParseConfig parses the raw JSON configuration on top of the defaults.
func ParseConfig(raw []byte) (config Config, err error) {
	config = Default()
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %v", err)
	}
	return config, nil
}

// LoadConfig reads and parses the configuration file at path.
func LoadConfig(path string) (config Config, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %v", err)
	}
	return ParseConfig(raw)
}

type Config struct {
	Similarity Similarity `json:"similarity"`
	Scrape     Scrape     `json:"scrape"`
	Database   Database   `json:"database"`
	LogLevel   LogLevel   `json:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Similarity: Similarity{
			TopN:      10,
			WithMean:  true,
			WithStd:   true,
			Precision: 4,
		},
		Scrape: Scrape{
			BaseURL: "https://www.ulmart.ru",
			Categories: map[string]string{
				"memory": "https://www.ulmart.ru/catalog/memory?pageNum=",
			},
			Pages:       7,
			Output:      "memory.txt",
			Concurrency: 4,
			Timeout:     Duration(30 * time.Second),
		},
		LogLevel: LogLevelInfo,
	}
}

// Duration is a time.Duration that reads and writes JSON strings such as "30s".
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		// plain numbers are taken as seconds
		var seconds float64
		if err2 := json.Unmarshal(data, &seconds); err2 != nil {
			return err
		}
		*d = Duration(seconds * float64(time.Second))
		return nil
	}
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}
