package config_test

import (
	"fmt"

	"github.com/c360/semports/config"
)

func ExampleDefault() {
	cfg := config.Default()
	fmt.Println(cfg.Validate() == nil, cfg.Export.OutDir, cfg.HasFormat(config.FormatYAML))
	// Output: true schemas true
}

func ExampleCompareVersions() {
	result, err := config.CompareVersions("1.2.0", "1.10.0")
	fmt.Println(result, err)
	// Output: -1 <nil>
}
