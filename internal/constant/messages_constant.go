package constant

// Conversational copy sent to players. The adventure runs in Spanish.
const (
	// Registration flow
	MsgAskName          = "¡Bienvenido, aventurero! Antes de empezar, dime cómo quieres que te llame."
	MsgNameTaken        = "Ese nombre ya está en uso. Elige otro, por favor."
	MsgConfirmName      = "¿Quieres que te llame <b>%s</b>? Responde sí o no."
	MsgNameRejected     = "De acuerdo, dime otro nombre entonces."
	MsgConfirmYesOrNo   = "Responde sí o no, por favor."
	MsgAskLiveLocation  = "Perfecto, %s. Para guiarte durante la aventura necesito tu ubicación en tiempo real. Abre el clip 📎, elige Ubicación y selecciona <b>Compartir ubicación en tiempo real</b>."
	MsgLiveLocationOnly = "Necesito tu ubicación en tiempo real, no un punto fijo. Elige <b>Compartir ubicación en tiempo real</b> en el menú de ubicación."

	// Default answers per phase, from the original bot
	MsgDefaultIntro    = "Envía /start o pulsa el botón Start abajo para iniciar el bot"
	MsgDefaultFirst    = "Pulsa el botón para empezar"
	MsgDefaultFinished = "El mundo te agradece tu labor evitando la catástrofe. Esperamos que lo hayas pasado bien."
	MsgDefaultFlavor   = "Deja de charlar y manos a la obra. ¡Necesitamos tu ayuda para encontrar al Anthony!"

	// Question ladder
	MsgCorrectAnswer = "Genial, se vé que sabes usar Google!"
	MsgWrongAnswer   = "¿Estás seguro? Inténtalo de nuevo"

	// Navigation
	MsgStartNavigation = "¡Hora de moverse! Dirígete al siguiente punto y envía /radar para comprobar lo cerca que estás."
	MsgRadarHint       = "Estás a %.0f metros del objetivo, dirección %s (%d°). ¡Sigue así!"
	MsgArrival         = "¡Has llegado! 🎯"
	MsgNoPosition      = "Todavía no tengo tu ubicación. Comparte tu ubicación en tiempo real para que el radar funcione."
	MsgStalePosition   = "Tu ubicación es demasiado antigua. Vuelve a compartir tu ubicación en tiempo real."
	MsgNoNavigation    = "Ahora mismo no hay ningún objetivo activo en el radar."
	MsgFinishSummary   = "Tiempo total: %s (incluye %d ayudas). ¡Enhorabuena, %s!"

	// Help dispenser
	MsgHelpHint        = "Ahí va una ayuda (recuerda que penaliza %d minutos): %s"
	MsgHelpMapLink     = "https://www.google.com/maps/search/?api=1&query=%f,%f"
	MsgNoHelpAvailable = "Aquí no hay ayuda disponible. ¡Esto tendrás que resolverlo tú!"
)
