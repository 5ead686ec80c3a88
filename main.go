// Package main library API.
//
// @title           Library API
// @version         1.0
// @description     Library management service (books, loans, users, categories, reviews).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import "library/app/command"

func main() {
	command.Execute()
}
