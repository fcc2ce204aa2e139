// Package config holds the Baasic client configuration and loads it from
// YAML files, .env files and environment variables.
//
// # Sources
//
// Load resolves, in increasing precedence:
//
//  1. built-in defaults (api.baasic.com, v1, 30s timeout, page size 10)
//  2. a YAML file: explicit path, or <name>.yml / config.yml in ./ and ./config/
//  3. a .env file: explicit path, or .env.<name> / .env in ./ and ./config/
//  4. environment variables prefixed with the upper-cased name, with nested
//     keys joined by underscores (BAASIC_API_KEY, BAASIC_PAGING_PAGE_SIZE)
//
// # Example
//
//	api_key: "my-app"
//	paging:
//	  page_size: 25
//	  sort: "dateCreated|desc"
//	logging:
//	  level: debug
//
//	var cfg config.Config
//	if err := config.Load("baasic", &cfg); err != nil {
//		return err
//	}
//	fmt.Println(cfg.BaseURL()) // https://api.baasic.com/v1/my-app/
package config
