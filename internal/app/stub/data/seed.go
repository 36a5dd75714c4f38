package data

// Default возвращает небольшой набор данных в формате jsonplaceholder
func Default() *Dataset {
	return &Dataset{
		Users: []Item{
			user(1, "Leanne Graham", "Bret", "Sincere@april.biz"),
			user(2, "Ervin Howell", "Antonette", "Shanna@melissa.tv"),
			user(3, "Clementine Bauch", "Samantha", "Nathan@yesenia.net"),
			user(4, "Patricia Lebsack", "Karianne", "Julianne.OConner@kory.org"),
			user(5, "Chelsey Dietrich", "Kamren", "Lucio_Hettinger@annie.ca"),
		},
		Posts: []Item{
			post(1, 1, "sunt aut facere repellat provident occaecati excepturi optio reprehenderit"),
			post(1, 2, "qui est esse"),
			post(1, 10, "optio molestias id quia eum"),
			post(1, 3, "ea molestias quasi exercitationem repellat qui ipsa sit aut"),
			post(2, 11, "et ea vero quia laudantium autem"),
		},
		Comments: []Item{
			comment(1, 1, "id labore ex et quam laborum", "Eliseo@gardner.biz"),
			comment(10, 46, "dignissimos et deleniti voluptate et quod", "Jeffery@juwan.us"),
			comment(10, 47, "rerum commodi est non dolor nesciunt ut", "Isaias_Kuhic@jarrett.net"),
			comment(11, 51, "molestias et odit ut commodi vel", "Presley.Mueller@myrl.com"),
		},
		Todos: []Item{
			todo(1, 1, "delectus aut autem", false),
			todo(1, 2, "quis ut nam facilis et officia qui", false),
			todo(1, 3, "fugiat veniam minus", false),
			todo(1, 4, "et porro tempora", true),
			todo(2, 21, "suscipit repellat esse quibusdam voluptatem incidunt", false),
		},
	}
}

func user(id int, name, username, email string) Item {
	return Item{
		"id":       id,
		"name":     name,
		"username": username,
		"email":    email,
	}
}

func post(userID, id int, title string) Item {
	return Item{
		"userId": userID,
		"id":     id,
		"title":  title,
		"body":   title,
	}
}

func comment(postID, id int, name, email string) Item {
	return Item{
		"postId": postID,
		"id":     id,
		"name":   name,
		"email":  email,
		"body":   name,
	}
}

func todo(userID, id int, title string, completed bool) Item {
	return Item{
		"userId":    userID,
		"id":        id,
		"title":     title,
		"completed": completed,
	}
}
