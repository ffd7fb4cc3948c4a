package i18n

var en = Table{
	"common": Table{
		"language":    "Language",
		"english":     "English",
		"spanish":     "Spanish",
		"logout":      "Logout",
		"viewProfile": "View profile",
		"settings":    "Settings",
		"myAccount":   "My account",
		"search":      "Search...",
		"welcome":     "Welcome",
		"company":     "Company",
		"dashboard":   "Dashboard",
		"loading":     "Loading...",
		"noData":      "No data available",
		"new":         "New",
		"active":      "Active",
		"inactive":    "Inactive",
	},
	"sidebar": Table{
		"dashboard":  "Dashboard",
		"clients":    "Clients",
		"users":      "Users",
		"items":      "Items",
		"categories": "Categories",
		"reports":    "Reports",
		"security":   "Security",
		"settings":   "Settings",
		"system":     "SYSTEM",
		"logout":     "Logout",
	},
	"clients": Table{
		"title":     "Clients",
		"addClient": "Add Client",
		"name":      "Name",
		"email":     "Email",
		"phone":     "Phone",
		"status":    "Status",
		"createdAt": "Created",
		"actions":   "Actions",
		"view":      "View",
		"edit":      "Edit",
		"delete":    "Delete",
		"search":    "Search clients...",
	},
	"users": Table{
		"title":     "Users",
		"addUser":   "Add User",
		"name":      "Name",
		"email":     "Email",
		"client":    "Client",
		"status":    "Status",
		"createdBy": "Created by",
		"createdAt": "Created",
		"search":    "Search users...",
	},
	"items": Table{
		"title":       "Items",
		"addItem":     "Add Item",
		"name":        "Name",
		"description": "Description",
		"client":      "Client",
		"category":    "Category",
		"createdBy":   "Created by",
		"createdAt":   "Created",
		"search":      "Search items...",
	},
	"categories": Table{
		"title":        "Categories",
		"addCategory":  "Add Category",
		"name":         "Name",
		"productCount": "Items",
		"createdAt":    "Created",
		"search":       "Search categories...",
	},
	"dashboard": Table{
		"title":         "Dashboard",
		"clients":       "Clients",
		"activeClients": "Total active clients",
		"users":         "Users",
		"activeUsers":   "Total active users",
		"items":         "Items",
		"categories":    "Categories",
	},
	"auth": Table{
		"registered":      "Account created, you can now sign in",
		"loggedIn":        "Welcome, {{name}}",
		"loggedOut":       "Signed out",
		"session":         "Session is valid",
		"profileUpdated":  "Profile updated",
		"passwordChanged": "Password changed",
	},
	"entities": Table{
		"client":   "Client",
		"user":     "User",
		"item":     "Item",
		"category": "Category",
		"account":  "Account",
	},
	"messages": Table{
		"created":   "{{entity}} created successfully",
		"updated":   "{{entity}} updated successfully",
		"deleted":   "{{entity}} deleted successfully",
		"retrieved": "{{entity}} retrieved successfully",
		"listed":    "Retrieved {{count}} records",
		"empty":     "No records found",
		"language":  "Language set to {{language}}",
		"healthy":   "Service is healthy",
	},
	"errors": Table{
		"badRequest":   "Invalid request body",
		"invalidId":    "Invalid {{entity}} ID",
		"invalid":      "Invalid data: {{detail}}",
		"notFound":     "{{entity}} not found",
		"conflict":     "{{entity}} already exists",
		"referenced":   "{{entity}} is still used by other records",
		"missingRef":   "A related record does not exist",
		"unauthorized": "Authentication required or credentials are invalid",
		"internal":     "Something went wrong, please try again",
		"language":     "Unsupported language {{language}}",
		"connection":   "Could not connect to the database",
	},
}
