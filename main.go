package main

import "github.com/killallgit/catalog-api/cmd"

// @title           Podcast Catalog API
// @version         1.0.0
// @description     REST API for browsing and managing a catalog of podcast categories, podcasts, episodes and tags
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/catalog-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token: "Bearer <token>"
func main() {
	cmd.Execute()
}
