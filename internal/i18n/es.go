package i18n

var es = Table{
	"common": Table{
		"language":    "Idioma",
		"english":     "Inglés",
		"spanish":     "Español",
		"logout":      "Cerrar sesión",
		"viewProfile": "Ver perfil",
		"settings":    "Configuración",
		"myAccount":   "Mi cuenta",
		"search":      "Buscar...",
		"welcome":     "Bienvenido",
		"company":     "Compañía",
		"dashboard":   "Panel",
		"loading":     "Cargando...",
		"noData":      "No hay datos disponibles",
		"new":         "Nuevo",
		"active":      "Activo",
		"inactive":    "Inactivo",
	},
	"sidebar": Table{
		"dashboard":  "Panel",
		"clients":    "Clientes",
		"users":      "Usuarios",
		"items":      "Ítems",
		"categories": "Categorías",
		"reports":    "Reportes",
		"security":   "Seguridad",
		"settings":   "Configuración",
		"system":     "SISTEMA",
		"logout":     "Cerrar sesión",
	},
	"clients": Table{
		"title":     "Clientes",
		"addClient": "Agregar Cliente",
		"name":      "Nombre",
		"email":     "Correo",
		"phone":     "Teléfono",
		"status":    "Estado",
		"createdAt": "Creado",
		"actions":   "Acciones",
		"view":      "Ver",
		"edit":      "Editar",
		"delete":    "Eliminar",
		"search":    "Buscar clientes...",
	},
	"users": Table{
		"title":     "Usuarios",
		"addUser":   "Agregar Usuario",
		"name":      "Nombre",
		"email":     "Correo",
		"client":    "Cliente",
		"status":    "Estado",
		"createdBy": "Creado por",
		"createdAt": "Creado",
		"search":    "Buscar usuarios...",
	},
	"items": Table{
		"title":       "Ítems",
		"addItem":     "Agregar Ítem",
		"name":        "Nombre",
		"description": "Descripción",
		"client":      "Cliente",
		"category":    "Categoría",
		"createdBy":   "Creado por",
		"createdAt":   "Creado",
		"search":      "Buscar productos...",
	},
	"categories": Table{
		"title":        "Categorías",
		"addCategory":  "Agregar Categoría",
		"name":         "Nombre",
		"productCount": "Ítems",
		"createdAt":    "Creado",
		"search":       "Buscar categorías...",
	},
	"dashboard": Table{
		"title":         "Panel",
		"clients":       "Clientes",
		"activeClients": "Total de clientes activos",
		"users":         "Usuarios",
		"activeUsers":   "Total de usuarios activos",
		"items":         "Ítems",
		"categories":    "Categorías",
	},
	"auth": Table{
		"registered":      "Cuenta creada, ya puedes iniciar sesión",
		"loggedIn":        "Bienvenido, {{name}}",
		"loggedOut":       "Sesión cerrada",
		"session":         "La sesión es válida",
		"profileUpdated":  "Perfil actualizado",
		"passwordChanged": "Contraseña actualizada",
	},
	"entities": Table{
		"client":   "el cliente",
		"user":     "el usuario",
		"item":     "el ítem",
		"category": "la categoría",
		"account":  "la cuenta",
	},
	"messages": Table{
		"created":   "Se creó {{entity}} correctamente",
		"updated":   "Se actualizó {{entity}} correctamente",
		"deleted":   "Se eliminó {{entity}} correctamente",
		"retrieved": "Se obtuvo {{entity}} correctamente",
		"listed":    "Se obtuvieron {{count}} registros",
		"empty":     "No se encontraron registros",
		"language":  "Idioma cambiado a {{language}}",
		"healthy":   "El servicio funciona correctamente",
	},
	"errors": Table{
		"badRequest":   "Cuerpo de la solicitud inválido",
		"invalidId":    "ID inválido para {{entity}}",
		"invalid":      "Datos inválidos: {{detail}}",
		"notFound":     "No se encontró {{entity}}",
		"conflict":     "Ya existe {{entity}}",
		"referenced":   "No se puede eliminar {{entity}} porque tiene registros asociados",
		"missingRef":   "Un registro relacionado no existe",
		"unauthorized": "Se requiere autenticación o las credenciales no son válidas",
		"internal":     "Algo salió mal, inténtalo de nuevo",
		"language":     "Idioma no soportado {{language}}",
		"connection":   "Error de conexión con la base de datos",
	},
}
