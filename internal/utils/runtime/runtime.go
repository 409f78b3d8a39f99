package runtime

// Must panics if err is not nil. Used for setup steps that can only fail on programmer error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
