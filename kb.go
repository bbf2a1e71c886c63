package collegium

import "strings"

// WelcomeMessage greets the user and explains what the assistant can do.
const WelcomeMessage = "👋 Привет! Я корпоративный бот, готовый помочь вам с поиском информации о сотрудниках, " +
	"мероприятиях, задачах и социальных активностях. Просто задайте вопрос в свободной форме!"

// NoGeneralInfo is returned when no knowledge base article matches.
const NoGeneralInfo = "Информация не найдена."

// StoreUnavailable is the reply when the record store fails mid-query.
const StoreUnavailable = "Произошла ошибка при обработке запроса. Попробуйте позже."

// UnclassifiedHelp is the reply for queries nothing could make sense of.
const UnclassifiedHelp = "Извините, я не совсем понял ваш вопрос. Попробуйте переформулировать.\n\n" +
	"Примеры вопросов:\n" +
	"• Кто работает в IT отделе?\n" +
	"• Какие мероприятия запланированы на этой неделе?\n" +
	"• Какие задачи у Ивана Петрова?\n" +
	"• Кто хочет поиграть в настольные игры?\n" +
	"• Когда день рождения у Марии?\n" +
	"• Какие срочные задачи в работе?\n" +
	"• Кто знает Python и Docker?\n" +
	"• Какие активности запланированы на месяц?"

var greetingWords = []string{"привет", "здравствуй", "добрый", "хай", "хеллоу"}

func isGreeting(lowered string) bool {
	for _, word := range greetingWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

// GeneralInfo answers company knowledge base questions with canned
// articles. Matching is substring-based over the lowercased query.
// Returns NoGeneralInfo when no article applies.
func GeneralInfo(query string) string {
	q := lower(query)

	if strings.Contains(q, "база знаний") || strings.Contains(q, "wiki") {
		return "📚 База знаний доступна по адресу: wiki.company.com\n\n" +
			"Для доступа используйте ваши корпоративные учетные данные.\n" +
			"Если у вас нет доступа, обратитесь к вашему руководителю или в IT-отдел."
	}

	if strings.Contains(q, "офис") || strings.Contains(q, "находится") {
		return "🏢 Офис находится по адресу:\n" +
			"г. Москва, ул. Примерная, д. 123\n\n" +
			"Ближайшее метро: Примерная (5 минут пешком)\n" +
			"Вход через главный вход, предъявите пропуск на ресепшене."
	}

	if strings.Contains(q, "правила") || strings.Contains(q, "политика") {
		return "📋 Основные правила компании:\n\n" +
			"1. Рабочий день с 9:00 до 18:00\n" +
			"2. Обед с 13:00 до 14:00\n" +
			"3. Дресс-код: business casual\n" +
			"4. Обязательное использование корпоративной почты\n" +
			"5. Соблюдение политики информационной безопасности\n\n" +
			"Полные правила доступны в базе знаний."
	}

	if strings.Contains(q, "it") || strings.Contains(q, "поддержка") || strings.Contains(q, "помощь") {
		return "🖥️ IT поддержка:\n\n" +
			"• Email: support@company.com\n" +
			"• Внутренний номер: 1234\n" +
			"• Часы работы: 9:00 - 18:00\n\n" +
			"Для срочных вопросов звоните на внутренний номер."
	}

	return NoGeneralInfo
}
