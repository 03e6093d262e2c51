// pkg/verify/types.go

package verify

// Context carries whatever configuration a command wants validated before it
// runs. Commands register their config struct on it; the runtime context
// calls ValidateAll once flags and environment are resolved.
type Context struct {
	Cfg any
}
