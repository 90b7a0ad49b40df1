package markup_test

// MacroNP's container ("define") is never opened by any recognizer
// wired into style.Mapping, so there is no document text a full parse
// can be driven with to exercise it externally. Its coverage instead
// lives in whitebox_test.go (package markup), which drives MakeNode
// directly against a dispatcher built without Mapping resolution.
