// Command camelot lists the cheapest transition routes between two keys
// of the Camelot wheel.
package main

func main() {
	Execute()
}
