package i18n

import "golang.org/x/text/language"

// entry is one catalog message
type entry struct {
	msg     string
	context string
	text    string
}

// translations holds the built-in catalogs. English only lists entries
// that differ from their key.
var translations = map[language.Tag][]entry{
	language.English: {
		{msg: "~R~eturn to Launcher", context: "lowres", text: "~R~eturn to Launch."},
	},
	language.German: {
		{msg: "~R~esume", text: "~F~ortsetzen"},
		{msg: "~L~oad", text: "~L~aden"},
		{msg: "~S~ave", text: "~S~peichern"},
		{msg: "~O~ptions", text: "~O~ptionen"},
		{msg: "~H~elp", text: "~H~ilfe"},
		{msg: "~A~bout", text: "Ü~b~er"},
		{msg: "~R~eturn to Launcher", text: "Zur Spiele~l~iste"},
		{msg: "~R~eturn to Launcher", context: "lowres", text: "~S~pieleliste"},
		{msg: "~Q~uit", text: "~B~eenden"},
		{msg: "~O~K", text: "~O~K"},
		{msg: "~C~ancel", text: "~A~bbrechen"},
		{msg: "Load game:", text: "Spiel laden:"},
		{msg: "Save game:", text: "Speichern:"},
		{msg: "Load", text: "Laden"},
		{msg: "Save", text: "Speichern"},
		{msg: "Game", text: "Spiel"},
		{msg: "Audio", text: "Audio"},
		{msg: "Keymaps", text: "Tasten"},
		{msg: "Backend", text: "Backend"},
		{msg: "Achievements", text: "Erfolge"},
		{msg: "Statistics", text: "Statistik"},
		{msg: "Music volume:", text: "Musiklautstärke:"},
		{msg: "SFX volume:", text: "Effektlautstärke:"},
		{msg: "Speech volume:", text: "Sprachlautstärke:"},
		{msg: "Mute all", text: "Alles aus"},
		{msg: "Text and speech:", text: "Text und Sprache:"},
		{msg: "Subtitle speed:", text: "Untertitel-Tempo:"},
		{msg: "Speech", text: "Sprache"},
		{msg: "Both", text: "Beides"},
		{msg: "Subtitles", text: "Untertitel"},
		{msg: "Fullscreen mode", text: "Vollbildmodus"},
		{msg: "V-Sync", text: "V-Sync"},
		{msg: "Remap", text: "Zuweisen"},
		{msg: "Reset", text: "Zurücksetzen"},
		{msg: "Press a key...", text: "Taste drücken..."},
		{msg: "Empty slot", text: "Leerer Platz"},
		{msg: "Save %d", text: "Spielstand %d"},
		{msg: "This game does not support saving from the menu. Use in-game interface",
			text: "Dieses Spiel unterstützt das Speichern über das Menü nicht. Verwenden Sie die Spieloberfläche."},
		{msg: "This game does not support loading from the menu. Use in-game interface",
			text: "Dieses Spiel unterstützt das Laden über das Menü nicht. Verwenden Sie die Spieloberfläche."},
		{msg: "This game cannot be saved at this time. Please try again later",
			text: "Das Spiel kann gerade nicht gespeichert werden. Bitte später erneut versuchen."},
		{msg: "This game cannot be loaded at this time. Please try again later",
			text: "Das Spiel kann gerade nicht geladen werden. Bitte später erneut versuchen."},
	},
}
