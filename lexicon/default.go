package lexicon

import "github.com/poiesic/collegium/core"

// Default returns the built-in Russian lexicon.
// The data is constructed once per call; callers are expected to build it
// at process start and share the instance.
func Default() *Lexicon {
	return &Lexicon{
		entries: map[core.Category]Entry{
			core.CategoryGreeting: {
				Keywords: []string{
					"привет", "здравствуй", "добрый", "начать", "помощь", "хеллоу",
					"хай", "здорово", "приветствую", "доброе",
				},
				Synonyms: []string{
					"здравствуйте", "доброе утро", "добрый день", "добрый вечер",
					"хеллоу", "хай", "приветствую", "здорово", "добро пожаловать",
					"рад видеть", "как дела", "как жизнь",
				},
				Examples: []string{
					"привет",
					"здравствуй",
					"добрый день",
					"начать",
					"помощь",
					"как пользоваться",
					"что умеешь",
					"как дела",
					"доброе утро",
					"добрый вечер",
					"рад тебя видеть",
					"как жизнь",
				},
			},
			core.CategoryEmployeeSearch: {
				Keywords: []string{
					"отдел", "отделе", "it", "hr", "sales", "marketing", "проект", "project",
					"разработка", "разработчик", "менеджер", "директор", "руководитель",
					"специалист", "инженер", "аналитик", "дизайнер", "тестировщик",
					"кто", "найти", "показать", "список", "сотрудники", "коллеги",
					"работает", "трудится", "занимается", "отвечает", "знает",
					"умеет", "может", "способен", "опыт", "навыки", "умения",
				},
				Synonyms: []string{
					"найти", "показать", "кто", "какие", "список", "сотрудники", "работники",
					"коллеги", "люди", "команда", "группа", "отдел", "подразделение",
					"искать", "поиск", "вывести", "отобразить",
					"работает", "трудится", "занимается", "отвечает", "знает",
					"умеет", "может", "способен", "опыт", "навыки", "умения",
					"специалист", "эксперт", "профессионал", "мастер", "гуру",
				},
				Examples: []string{
					"кто работает в отделе",
					"найти сотрудника",
					"кто из отдела",
					"покажи сотрудников",
					"кто работает над проектом",
					"список сотрудников",
					"какие люди работают",
					"кто в команде",
					"покажи команду разработки",
					"кто отвечает за проект",
					"найти специалиста по",
					"кто руководит отделом",
					"кто занимается разработкой",
					"покажи всех сотрудников отдела",
					"кто знает python",
					"кто умеет работать с базами данных",
					"найти эксперта по тестированию",
					"кто может помочь с проектом",
					"кто имеет опыт в маркетинге",
					"покажи специалистов по дизайну",
				},
			},
			core.CategoryEventInfo: {
				Keywords: []string{
					"мероприятие", "мероприятия", "корпоратив", "тренинг", "встреча",
					"неделе", "недели", "месяц", "месяца", "день", "дня", "дата",
					"время", "расписание", "план", "календарь", "событие", "события",
					"день рождения", "дни рождения", "праздник", "праздники",
					"конференция", "семинар", "вебинар", "презентация", "доклад",
					"выступление", "обучение", "курс", "лекция", "мастер-класс",
				},
				Synonyms: []string{
					"когда", "расписание", "план", "календарь", "дата", "время",
					"запланировано", "назначено", "будет", "пройдет", "состоится",
					"организовано", "подготовлено", "устроено", "праздновать",
					"отмечать", "поздравлять", "чествовать", "проводить",
					"организовывать", "планировать", "готовить", "устраивать",
				},
				Examples: []string{
					"какие мероприятия",
					"когда корпоратив",
					"расписание мероприятий",
					"какие встречи",
					"когда тренинг",
					"что запланировано",
					"какие события",
					"что будет на неделе",
					"какие встречи запланированы",
					"расписание на месяц",
					"когда следующее мероприятие",
					"что готовится в отделе",
					"когда день рождения",
					"какие праздники",
					"когда конференция",
					"расписание тренингов",
					"какие семинары на этой неделе",
					"когда мастер-класс",
					"что запланировано на месяц",
					"какие мероприятия в офисе",
				},
			},
			core.CategoryTaskInfo: {
				Keywords: []string{
					"задача", "задачи", "дедлайн", "проект", "работа", "поручение",
					"обязанность", "функция", "роль", "ответственность", "контроль",
					"проверка", "тестирование", "разработка", "внедрение",
					"срок", "статус", "прогресс", "выполнение", "todo", "in progress", "done",
					"блокер", "проблема", "ошибка", "баг", "фича", "улучшение",
					"оптимизация", "рефакторинг", "документация", "отчет",
				},
				Synonyms: []string{
					"сделать", "выполнить", "срок", "статус", "прогресс", "ход",
					"продвижение", "этап", "стадия", "фаза", "процесс", "работа",
					"дело", "поручение", "обязанность", "контролировать",
					"проверять", "отслеживать", "мониторить", "в работе",
					"текущие", "к выполнению", "сделано", "выполнено",
					"заблокировано", "проблема", "ошибка", "исправить",
					"улучшить", "оптимизировать", "переписать", "документировать",
				},
				Examples: []string{
					"какие задачи",
					"что нужно сделать",
					"какие дедлайны",
					"статус задачи",
					"когда сдать",
					"что в работе",
					"текущие задачи",
					"мои поручения",
					"что на контроле",
					"какие проекты в работе",
					"статус разработки",
					"ход выполнения",
					"что нужно сделать до",
					"какие задачи у",
					"покажи задачи к выполнению",
					"какие задачи в работе",
					"покажи выполненные задачи",
					"есть ли блокеры",
					"какие проблемы",
					"статус проекта",
				},
			},
			core.CategorySocialActivity: {
				Keywords: []string{
					"обед", "игра", "игры", "встреча", "встречи", "общение",
					"команда", "командный", "вместе", "совместно", "активность",
					"активности", "досуг", "отдых", "развлечение", "развлечения",
					"йога", "спорт", "фитнес", "танцы", "музыка", "кино",
					"театр", "концерт", "выставка", "музей", "парк", "прогулка",
					"вечеринка", "праздник", "корпоратив", "тимбилдинг",
				},
				Synonyms: []string{
					"поиграть", "пообедать", "встретиться", "познакомиться",
					"пообщаться", "провести время", "отдохнуть", "развлечься",
					"командная игра", "совместный обед", "групповая активность",
					"заняться спортом", "позаниматься йогой", "потанцевать",
					"сходить в кино", "посетить выставку", "погулять в парке",
					"отпраздновать", "провести тимбилдинг", "организовать вечеринку",
				},
				Examples: []string{
					"кто хочет поиграть",
					"кто идет на обед",
					"кто хочет встретиться",
					"найти партнера для игры",
					"кто свободен на обед",
					"кто хочет пообщаться",
					"найти компанию для",
					"кто хочет присоединиться",
					"кто готов поиграть",
					"кто хочет пообедать вместе",
					"кто занимается йогой",
					"кто хочет в кино",
					"кто идет на выставку",
					"кто хочет в парк",
					"кто готов к тимбилдингу",
					"кто хочет на вечеринку",
					"кто занимается спортом",
					"кто танцует",
					"кто любит музыку",
					"кто хочет в театр",
				},
			},
			core.CategoryGeneralInfo: {
				Keywords: []string{
					"что", "как", "где", "когда", "почему", "зачем",
					"информация", "справка", "помощь", "подсказка",
					"правила", "политика", "процедуры", "процессы",
					"структура", "организация", "компания", "офис",
					"рабочее место", "оборудование", "ресурсы",
					"документы", "файлы", "база знаний", "wiki",
				},
				Synonyms: []string{
					"расскажи", "объясни", "покажи", "найди", "дай",
					"информацию", "справку", "помощь", "подсказку",
					"правила", "политику", "процедуры", "процессы",
					"структуру", "организацию", "компанию", "офис",
					"рабочее место", "оборудование", "ресурсы",
					"документы", "файлы", "базу знаний", "wiki",
				},
				Examples: []string{
					"как работает",
					"где находится",
					"когда открыто",
					"что нужно знать",
					"какие правила",
					"как пользоваться",
					"где найти",
					"как получить доступ",
					"что делать если",
					"как решить проблему",
					"где посмотреть",
					"как узнать",
					"что нового",
					"какие изменения",
					"как обновить",
					"где документация",
					"как настроить",
					"что требуется",
					"как начать",
					"где справка",
				},
			},
		},
		skills: Dict{
			"python":     {"python", "питон"},
			"java":       {"java", "джава"},
			"javascript": {"javascript", "js", "джаваскрипт"},
			"react":      {"react", "реакт"},
			"django":     {"django", "джанго"},
			"docker":     {"docker", "докер"},
			"postgresql": {"postgresql", "postgres", "постгрес"},
			"mongodb":    {"mongodb", "монго"},
			"selenium":   {"selenium", "селениум"},
			"pytest":     {"pytest", "питест"},
			"postman":    {"postman", "постман"},
			"jira":       {"jira", "джира"},
			"agile":      {"agile", "аджайл"},
			"scrum":      {"scrum", "скрам"},
			"fastapi":    {"fastapi", "фастапи"},
		},
		roles: Dict{
			"разработчик": {"разработчик", "программист", "developer", "coder"},
			"тестировщик": {"тестировщик", "qa", "tester"},
			"менеджер":    {"менеджер", "manager", "руководитель"},
			"дизайнер":    {"дизайнер", "designer", "ui/ux"},
			"аналитик":    {"аналитик", "analyst"},
		},
		departments: Dict{
			"it":        {"it", "айти", "информационные технологии", "разработка"},
			"hr":        {"hr", "эйчар", "кадры", "персонал"},
			"sales":     {"sales", "продажи", "сейлз", "коммерция"},
			"marketing": {"marketing", "маркетинг", "реклама", "продвижение"},
		},
		interests: Dict{
			"йога":            {"йога"},
			"настольные игры": {"игра", "игры"},
			"путешествия":     {"путешествия"},
			"танцы":           {"танцы"},
			"теннис":          {"теннис"},
		},
		timePeriods: Dict{
			"today":    {"сегодня", "сейчас", "в данный момент"},
			"tomorrow": {"завтра", "на следующий день"},
			"week":     {"неделе", "недели", "на этой неделе", "в течение недели"},
			"month":    {"месяц", "месяце", "месяца", "в этом месяце", "в течение месяца"},
		},
		eventTypes: Dict{
			"meeting":    {"встреча", "meeting", "митинг"},
			"training":   {"тренинг", "training", "обучение", "семинар", "seminar", "вебинар"},
			"conference": {"конференция", "conference", "конф"},
			"corporate":  {"корпоратив", "party", "вечеринка"},
			"birthday":   {"день рождения", "дня рождения", "дни рождения"},
		},
		taskStatuses: Dict{
			"todo":        {"todo", "сделать", "выполнить", "к выполнению", "новые", "ожидает", "в очереди", "в планах"},
			"in_progress": {"в работе", "текущие", "выполняются", "активные", "in progress"},
			"done":        {"done", "сделано", "выполнено", "завершено", "готово", "завершенные", "выполненные"},
			"blocked":     {"blocked", "блокер", "блокеры", "заблокировано", "проблема", "проблемы", "ошибка", "ошибки", "препятствие", "препятствия"},
		},
		priorities: Dict{
			"high":   {"высокий", "высокая", "срочно", "срочная", "критично", "критичная"},
			"medium": {"средний", "средняя", "обычный", "обычная"},
			"low":    {"низкий", "низкая", "не срочно", "не срочная"},
		},
		activityTypes: Dict{
			"yoga":        {"йога", "йогой"},
			"games":       {"игра", "игры", "настольные", "поиграть"},
			"lunch":       {"обед", "пообедать", "lunch"},
			"sport":       {"спорт", "фитнес", "танцы"},
			"развлечения": {"кино", "театр", "концерт", "выставка"},
		},
	}
}
