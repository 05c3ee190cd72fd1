package fricgan

import "fmt"

func assertFits(op string, need, have int) {
	if need > have {
		panic(fmt.Sprintf("fricgan: %s needs %d bytes, buffer has %d", op, need, have))
	}
}
