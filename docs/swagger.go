package docs

// @title Gadam Restaurant Finder API
// @version 0.1.0
// @description Restaurant discovery service with a concierge recommendation engine, insights dashboard and admin panel
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:4000
// @BasePath /
// @schemes http https
