// Command srtnr-cli shortens URLs from a terminal with the same providers
// as the desktop application.
package main

func main() {
	Execute()
}
