package port

import "errors"

var (
	// ErrInvalidImage means the input bytes could not be decoded as an image.
	ErrInvalidImage = errors.New("invalid image")

	// ErrUnsupportedModel means the engine cannot expose the requested layer
	// or lacks the weights needed for gradient capture.
	ErrUnsupportedModel = errors.New("unsupported model")

	// ErrNumericInstability means activations or gradients contained
	// non-finite values.
	ErrNumericInstability = errors.New("numeric instability")
)
