// Package app contains shared application-layer constants used across the
// vault server handlers and the client.
//
// The Msg* constants are the message strings written into HTTP response
// bodies; the client error mapper matches against them to translate
// transport errors back into business errors. The UI* constants are the
// French strings shown to the user by the terminal client. Keeping both in
// one place ensures consistent wording throughout the application.
package app

// Server API response messages.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgEmailAlreadyRegistered is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyRegistered = "email already registered"

	// MsgInvalidEmailPassword is returned for both an unknown email and a
	// wrong password, so the response does not reveal which one was wrong.
	MsgInvalidEmailPassword = "invalid email/password"
)

// Client UI strings. The original product shipped with a French interface;
// the terminal client keeps the same wording.
const (
	UITitle    = "Vault Access"
	UISubtitle = "Gestionnaire d'accès sécurisé"

	UILoadFailed   = "Erreur lors du chargement des accès"
	UICreateFailed = "Erreur lors de l'ajout"
	UICreated      = "Accès ajouté avec succès"
	UIUpdateFailed = "Erreur lors de la mise à jour"
	UIUpdated      = "Accès mis à jour"
	UIDeleteFailed = "Erreur lors de la suppression"
	UIDeleted      = "Accès supprimé"

	UINotAuthenticated  = "Non authentifié"
	UIWrongCredentials  = "Email ou mot de passe incorrect"
	UIEmailAlreadyTaken = "Cet email est déjà utilisé"
	UIInvalidEmail      = "Email invalide"
	UIPasswordTooShort  = "Le mot de passe doit contenir au moins 6 caractères"
)
