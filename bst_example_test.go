// Copyright 2022 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bst_test

import (
	"fmt"
	"strings"

	"github.com/ajwerner/bst"
)

func ExampleTree() {
	t := bst.New[string](strings.Compare)
	t.Insert("foo")
	t.Insert("bar")
	t.Insert("baz")
	fmt.Println(t.Search("foo").Value())
	fmt.Println(t.Search("qux") == nil)
	t.Delete("baz")
	it := t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		fmt.Println(it.Cur())
	}

	// Output:
	// foo
	// true
	// bar
	// foo
}
