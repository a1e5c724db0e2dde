package seed

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/pkg/logger"
)

// Run inserts the development dataset. Each table is filled only when it
// is still empty, so repeated starts with seeding enabled are harmless.
func Run(db *gorm.DB, log *logger.Logger) error {
	if err := seedMenu(db); err != nil {
		return err
	}
	if err := seedEvents(db); err != nil {
		return err
	}
	if err := seedStaff(db); err != nil {
		return err
	}
	if err := seedNews(db); err != nil {
		return err
	}
	if err := seedAbout(db); err != nil {
		return err
	}
	log.Info("Seed data loaded")
	return nil
}

func tableEmpty(db *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedMenu(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.MenuCategory{})
	if err != nil || !empty {
		return err
	}

	categories := []models.MenuCategory{
		{Name: "Закуски", SortOrder: 1},
		{Name: "Салаты", SortOrder: 2},
		{Name: "Супы", SortOrder: 3},
		{Name: "Горячие блюда", SortOrder: 4},
		{Name: "Пицца", SortOrder: 5},
		{Name: "Десерты", SortOrder: 6},
		{Name: "Напитки", SortOrder: 7},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	items := []models.MenuItem{
		{Name: "Брускетта с томатами", Description: "Хрустящий багет с томатами, базиликом и оливковым маслом", Price: 350, CategoryID: byName["Закуски"], ArticleCode: "Z001"},
		{Name: "Сырная тарелка", Description: "Ассорти из 5 видов сыра с медом и орехами", Price: 650, CategoryID: byName["Закуски"], ArticleCode: "Z002"},
		{Name: "Цезарь с курицей", Description: "Классический салат с куриной грудкой, сыром пармезан и соусом цезарь", Price: 450, CategoryID: byName["Салаты"], ArticleCode: "S001"},
		{Name: "Греческий салат", Description: "Свежие овощи, оливки и сыр фета с оливковым маслом", Price: 420, CategoryID: byName["Салаты"], ArticleCode: "S002"},
		{Name: "Борщ", Description: "Традиционный борщ со сметаной и чесночными пампушками", Price: 380, CategoryID: byName["Супы"], ArticleCode: "SP001"},
		{Name: "Грибной крем-суп", Description: "Нежный суп-пюре из белых грибов и шампиньонов", Price: 420, CategoryID: byName["Супы"], ArticleCode: "SP002"},
		{Name: "Стейк из говядины", Description: "Стейк из мраморной говядины с овощами гриль", Price: 950, CategoryID: byName["Горячие блюда"], ArticleCode: "G001"},
		{Name: "Паста Карбонара", Description: "Классическая итальянская паста с беконом и сыром пармезан", Price: 520, CategoryID: byName["Горячие блюда"], ArticleCode: "G002"},
		{Name: "Пицца Маргарита", Description: "Томатный соус, моцарелла, базилик", Price: 450, CategoryID: byName["Пицца"], ArticleCode: "P001"},
		{Name: "Пицца Пепперони", Description: "Томатный соус, моцарелла, пепперони", Price: 520, CategoryID: byName["Пицца"], ArticleCode: "P002"},
		{Name: "Тирамису", Description: "Классический итальянский десерт с маскарпоне и кофе", Price: 350, CategoryID: byName["Десерты"], ArticleCode: "D001"},
		{Name: "Чизкейк", Description: "Нежный чизкейк с ягодным соусом", Price: 380, CategoryID: byName["Десерты"], ArticleCode: "D002"},
		{Name: "Латте", Description: "Кофе с молоком", Price: 180, CategoryID: byName["Напитки"], ArticleCode: "N001"},
		{Name: "Свежевыжатый апельсиновый сок", Description: "200 мл", Price: 250, CategoryID: byName["Напитки"], ArticleCode: "N002"},
	}
	return db.Create(&items).Error
}

func seedEvents(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Event{})
	if err != nil || !empty {
		return err
	}

	now := time.Now()
	events := []models.Event{
		{Title: "Живая музыка", Description: "Выступление джазового квартета. Начало в 19:00", Date: now.AddDate(0, 0, 7)},
		{Title: "Дегустация вин", Description: "Дегустация итальянских вин с сомелье. Начало в 18:00", Date: now.AddDate(0, 0, 14)},
		{Title: "Мастер-класс по приготовлению пиццы", Description: "Научитесь готовить настоящую итальянскую пиццу. Начало в 15:00", Date: now.AddDate(0, 0, 21)},
	}
	return db.Create(&events).Error
}

func seedStaff(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.Staff{})
	if err != nil || !empty {
		return err
	}

	staff := []models.Staff{
		{Name: "Иван Петров", Position: "Шеф-повар", Description: "Опыт работы более 15 лет. Специализируется на европейской и русской кухне.", SortOrder: 1},
		{Name: "Мария Иванова", Position: "Администратор", Description: "Всегда поможет с выбором блюд и организацией мероприятий.", SortOrder: 2},
		{Name: "Алексей Сидоров", Position: "Бармен", Description: "Мастер коктейлей с опытом работы в лучших барах города.", SortOrder: 3},
		{Name: "Екатерина Смирнова", Position: "Кондитер", Description: "Создает неповторимые десерты, которые стали визитной карточкой нашего кафе.", SortOrder: 4},
	}
	return db.Create(&staff).Error
}

func seedNews(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.News{})
	if err != nil || !empty {
		return err
	}

	news := []models.News{
		{Title: "Новое летнее меню", Content: "Мы рады представить вам наше обновленное меню, в котором появились легкие салаты, освежающие напитки и сезонные десерты. Приходите пробовать!"},
		{Title: "Живая музыка по пятницам", Content: "Мы запускаем новый формат вечеров - живая музыка каждую пятницу с 19:00 до 22:00. Вход свободный, но рекомендуем бронировать столики заранее."},
		{Title: "Мастер-класс по приготовлению пиццы", Content: "В это воскресенье наш шеф-повар проведет мастер-класс по приготовлению настоящей итальянской пиццы. Количество мест ограничено, записывайтесь по телефону."},
	}
	return db.Create(&news).Error
}

func seedAbout(db *gorm.DB) error {
	empty, err := tableEmpty(db, &models.AboutContent{})
	if err != nil || !empty {
		return err
	}

	advantages, err := json.Marshal([]models.Advantage{
		{Title: "Уютная атмосфера", Description: "Наше кафе создано для комфортного отдыха. Приятный интерьер, мягкие диваны и приглушенный свет создают особую атмосферу уюта."},
		{Title: "Вкусная еда", Description: "Мы готовим из свежих продуктов высокого качества. Наше меню разнообразно и удовлетворит даже самых требовательных гурманов."},
		{Title: "Отличное обслуживание", Description: "Наши официанты внимательны и дружелюбны. Мы стремимся сделать ваше пребывание в нашем кафе максимально комфортным."},
		{Title: "Живая музыка", Description: "По выходным у нас выступают музыканты, создающие неповторимую атмосферу. Приходите насладиться хорошей музыкой и вкусной едой."},
	})
	if err != nil {
		return err
	}

	content := models.AboutContent{
		ID:         models.AboutContentID,
		Title:      "О кафе Бар-да-бар",
		Content:    "Добро пожаловать в кафе Бар-да-бар! Мы рады приветствовать вас в нашем уютном заведении, где каждый гость становится частью нашей дружной семьи.",
		Advantages: string(advantages),
	}
	return db.Create(&content).Error
}
