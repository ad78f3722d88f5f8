package render

import "errors"

// ErrGenerationFailed is the single error the render boundary reports. No
// partial output accompanies it.
var ErrGenerationFailed = errors.New("deck generation failed")
