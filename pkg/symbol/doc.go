// Package symbol derives identifier-safe tokens from translation key paths.
//
// Tokens are used purely for readability of generated artifacts (index
// constants, table comments); the runtime lookup path never consults them.
//
//	symbol.FromKey("weather.cloudy")  // "WEATHER_CLOUDY"
//	symbol.FromKey("2fa.enabled")     // "_2FA_ENABLED"
//	symbol.FromKey("--")              // "KEY"
//
// Distinct keys may map to the same token ("a.b" and "a_b" both yield
// "A_B"); callers that need uniqueness should disambiguate, as the code
// generator does with a numeric suffix.
package symbol
