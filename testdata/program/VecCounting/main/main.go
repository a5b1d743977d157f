package main

import (
	"fmt"

	"example.com/VecCounting/nums"
)

func main() {
	var w nums.Nums
	w.PushInt(1, 2, 3)
	w.Push(nums.NumFromFloat64(0.5))
	w.PushInt(4)

	fmt.Println(w.Len(), w.CountInt(), w.CountFloat64())

	sum := 0
	for p := range w.IterInt() {
		sum += *p
	}
	fmt.Println(sum)

	for i, p := range w.EnumerateInt() {
		fmt.Println(i, *p)
	}

	first, _ := w.FirstInt()
	last, _ := w.LastInt()
	fmt.Println(*first, *last)

	fmt.Println(w.AnyFloat64(), w.AllInt())

	v, ok := w.Pop()
	n, _ := v.TryIntoInt()
	fmt.Println(n, ok, w.Len())

	w.Clear()
	fmt.Println(w.IsEmpty())
}
