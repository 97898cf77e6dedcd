// Package config defines the launch parameters and their override chain.
//
// The defaults reproduce the historical launcher script exactly:
// interpreter candidates python3 then python, entry point main.py,
// port 8083. With no config file and no environment variables set, the
// launcher behaves identically to that script.
//
// Overrides are layered in increasing precedence:
//  1. built-in defaults
//  2. an optional config file in the working directory
//     (launcher.yaml / launcher.yml / launcher.jsonc / launcher.json)
//  3. PDFMARK_* environment variables
//
// The JSONC variants may contain comments; they are stripped with
// github.com/tidwall/jsonc before parsing with encoding/json.
package config
