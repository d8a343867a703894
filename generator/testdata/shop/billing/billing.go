package billing

type Invoice struct {
	Number string
	Paid   bool
}
