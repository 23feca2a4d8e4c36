// Package engine resolves translation keys against a compiled catalog,
// writing results into a single bounded reusable buffer.
//
// An Engine is an explicit context object owned by the embedding
// application; there is no package-level state. It holds the active locale
// and the translation buffer, and reads the immutable catalog shared with
// the compiler:
//
//	eng := engine.New(cat)
//	defer eng.CleanupBuffer()
//
//	text := eng.Translate("greeting")   // default locale's value
//	eng.SetLocale("fr")
//	text = eng.Translate("greeting")    // French value
//
// Translate never fails. An unknown key echoes back verbatim, as does a
// lookup performed while buffer acquisition has failed in both allocation
// regions. Values longer than the buffer capacity are silently truncated.
//
// The slice returned by Translate aliases the shared buffer and is
// overwritten by the next call; callers must not retain it. Use
// TranslateString to copy the result out.
//
// Concurrency: a single logical execution context is assumed to call
// Translate, SetLocale and the buffer lifecycle hooks; the Engine performs
// no internal locking. Callers with multiple goroutines must serialize
// access externally. The catalog itself may be read from anywhere.
package engine
