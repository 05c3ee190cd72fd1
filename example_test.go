package fricgan_test

import (
	"fmt"

	"github.com/rawbytedev/fricgan"
)

func ExampleEncodeVLQ() {
	sink := make([]byte, fricgan.MaxVLQLen32)
	n := fricgan.EncodeVLQ(uint32(300), sink)
	fmt.Printf("% x\n", sink[:n])
	// Output: ac 02
}

func ExampleWriteVLQString() {
	s := "hello"
	sink := make([]byte, fricgan.VLQStringLen[uint32](s))
	n := fricgan.WriteVLQString[uint32](s, sink)

	var out string
	fricgan.ReadVLQString[uint32](&out, sink)
	fmt.Println(n, out)
	// Output: 6 hello
}

func ExampleDecodeFixed() {
	var v int16
	sink := make([]byte, fricgan.Size[int16]())
	fricgan.EncodeFixed(int16(-42), sink)
	n := fricgan.DecodeFixed(&v, sink)
	fmt.Println(n, v)
	// Output: 2 -42
}
