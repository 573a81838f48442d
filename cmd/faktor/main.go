// SPDX-License-Identifier: MIT

// Command faktor is a small front end over the faktor library: it reads
// whitespace-formatted matrix files, factors them, and reports
// determinants, solutions and backend information.
package main

func main() {
	Execute()
}
