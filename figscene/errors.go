package figscene

import "fmt"

// All misuse is reported synchronously, at the call that introduced it;
// nothing is retried and a failed build never yields a partial document.

// ValidationError reports malformed entity data at construction time,
// such as a curve with too few anchors.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid entity: " + e.Reason }

// ConfigurationError reports an invalid enum or option value, such as an
// unknown line style, tick placement or save backend.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return "invalid configuration: " + e.Reason }

// KindError reports an attempt to attach an object kind a container does
// not support.
type KindError struct {
	Kind string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("unsupported object kind %s", e.Kind)
}
