package steps

func init() {
	Register(Prettier{})
}
