package model

// Ключи текстов бота. Привязаны к обработчикам start и к уведомлениям о результате.
// Не следует добавлять/изменять ключи без изменения каталога сообщений.
const (
	StartPromptKey = "start_prompt"
	StartButtonKey = "start_button"
	CongratsKey    = "congrats"
	ConsolationKey = "consolation"
)
