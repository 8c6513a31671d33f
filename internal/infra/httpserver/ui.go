package httpserver

import _ "embed"

// Single-page UI served at /. Kept as one embedded file so the binary stays
// self-contained.
//
//go:embed templates/index.html
var indexPage []byte
