package httperrx

import (
	"github.com/Abraxas-365/httperrx/statusx"
)

// Variant is a per-status-code error shape with the status code, expose
// policy and derived name baked in. One Variant exists for every known 4xx
// and 5xx status code; all of them are built once at package load and never
// change afterwards.
type Variant struct {
	status    int
	expose    bool
	name      string
	className string
}

var (
	variantsByStatus map[int]*Variant
	variantsByName   map[string]*Variant
	variantList      []*Variant
)

func init() {
	variantsByStatus = make(map[int]*Variant)
	variantsByName = make(map[string]*Variant)

	for _, code := range statusx.Codes() {
		class := statusx.Class(code)
		if class != 400 && class != 500 {
			continue
		}
		name := identifier(statusx.Text(code))
		v := &Variant{
			status:    code,
			expose:    class == 400,
			name:      name,
			className: className(name),
		}
		variantsByStatus[code] = v
		variantsByName[name] = v
		variantList = append(variantList, v)
	}
}

// ForStatus returns the variant registered for an exact status code.
func ForStatus(code int) (*Variant, bool) {
	v, ok := variantsByStatus[code]
	return v, ok
}

// ForName returns the variant registered under a derived identifier name,
// e.g. "NotFound". ForName and ForStatus resolve to the same variant for
// the same status code.
func ForName(name string) (*Variant, bool) {
	v, ok := variantsByName[name]
	return v, ok
}

// Variants returns every registered variant in ascending status order. The
// returned slice is a copy and safe to modify.
func Variants() []*Variant {
	out := make([]*Variant, len(variantList))
	copy(out, variantList)
	return out
}

// Statuses returns a copy of the underlying status table, mapping every
// known status code to its reason phrase.
func Statuses() map[int]string {
	return statusx.All()
}

// Status returns the fixed status code of the variant.
func (v *Variant) Status() int {
	return v.status
}

// Expose returns the fixed expose policy: true for 4xx, false for 5xx.
func (v *Variant) Expose() bool {
	return v.expose
}

// Name returns the derived identifier, e.g. "NotFound".
func (v *Variant) Name() string {
	return v.name
}

// ClassName returns the display class name, e.g. "NotFoundError".
func (v *Variant) ClassName() string {
	return v.className
}

// New constructs an error with the variant's status and expose policy baked
// in. The message defaults to the status code's reason phrase when omitted;
// an explicit message is kept as given, even when empty. Each call produces
// an independent value.
func (v *Variant) New(message ...string) *Error {
	msg := statusx.Text(v.status)
	if len(message) > 0 {
		msg = message[0]
	}
	return &Error{
		status:  v.status,
		expose:  v.expose,
		name:    v.className,
		message: msg,
		stack:   callers(1),
	}
}
