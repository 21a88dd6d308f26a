package domain

type Policy string

const (
	PolicyFIFO Policy = "fifo"
	PolicyRR   Policy = "rr"
	PolicySTCF Policy = "stcf"
	PolicyMLFQ Policy = "mlfq"
)

// Policies returns the policies in presentation order. The wizard walks
// them in this order and the report lists them in this order.
func Policies() []Policy {
	return []Policy{PolicyFIFO, PolicyRR, PolicySTCF, PolicyMLFQ}
}

func (p Policy) Valid() bool {
	switch p {
	case PolicyFIFO, PolicyRR, PolicySTCF, PolicyMLFQ:
		return true
	default:
		return false
	}
}

func (p Policy) Label() string {
	switch p {
	case PolicyFIFO:
		return "FIFO"
	case PolicyRR:
		return "Round Robin"
	case PolicySTCF:
		return "STCF"
	case PolicyMLFQ:
		return "MLFQ"
	default:
		return string(p)
	}
}
