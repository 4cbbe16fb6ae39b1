package database

import (
	"time"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
)

const placeholderImg = "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		panic(err)
	}
	return t
}

// TestData is the fixture set loaded by cmd/seed and the integration tests.
var TestData = Data{
	Categories: []models.Category{
		{Slug: "euro game", Description: "Abstact games that involve little luck"},
		{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
		{Slug: "dexterity", Description: "Games involving physical skill"},
		{Slug: "children's games", Description: "Games suitable for children"},
	},
	Users: []models.User{
		{Username: "mallionaire", Name: "haz", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{Username: "philippaclaire9", Name: "philippa", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{Username: "bainesface", Name: "sarah", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{Username: "dav3rid", Name: "dave", AvatarURL: placeholderImg},
	},
	Reviews: []models.Review{
		{
			Title: "Agricola", Designer: "Uwe Rosenberg", Owner: "mallionaire",
			ReviewBody: "Farmyard fun!", ReviewImgURL: placeholderImg,
			Category: "euro game", Votes: 1, CreatedAt: ts("2021-01-18T10:00:20.514Z"),
		},
		{
			Title: "Jenga", Designer: "Leslie Scott", Owner: "philippaclaire9",
			ReviewBody: "Fiddly fun for all the family", ReviewImgURL: placeholderImg,
			Category: "dexterity", Votes: 5, CreatedAt: ts("2021-01-18T10:01:41.251Z"),
		},
		{
			Title: "Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "bainesface",
			ReviewBody: "We couldn't find the werewolf!", ReviewImgURL: placeholderImg,
			Category: "social deduction", Votes: 5, CreatedAt: ts("2021-01-18T10:01:41.251Z"),
		},
		{
			Title: "Dolor reprehenderit", Designer: "Gamey McGameface", Owner: "mallionaire",
			ReviewBody: "Consequat velit occaecat voluptate do. Dolor pariatur fugiat sint et proident ex do consequat est.",
			ReviewImgURL: "https://images.pexels.com/photos/278888/pexels-photo-278888.jpeg",
			Category: "social deduction", Votes: 7, CreatedAt: ts("2021-01-22T11:35:50.936Z"),
		},
		{
			Title: "Proident tempor et.", Designer: "Seymour Buttz", Owner: "mallionaire",
			ReviewBody: "Labore occaecat sunt qui commodo anim anim aliqua adipisicing aliquip fugiat.",
			ReviewImgURL: "https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg",
			Category: "social deduction", Votes: 5, CreatedAt: ts("2021-01-07T09:06:08.077Z"),
		},
		{
			Title: "Occaecat consequat officia in quis commodo.", Designer: "Ollie Tabooger", Owner: "mallionaire",
			ReviewBody: "Fugiat fugiat enim officia laborum quis. Aliquip laboris non nulla nostrud magna exercitation in ullamco aute laborum cillum nisi sint.",
			ReviewImgURL: "https://images.pexels.com/photos/207924/pexels-photo-207924.jpeg",
			Category: "social deduction", Votes: 8, CreatedAt: ts("2020-09-13T14:19:28.077Z"),
		},
		{
			Title: "Mollit elit qui incididunt veniam occaecat cupidatat", Designer: "Avery Wunzboogerz", Owner: "mallionaire",
			ReviewBody: "Consectetur incididunt aliquip sunt officia. Magna ex nulla consectetur laboris incididunt ea non qui.",
			ReviewImgURL: "https://images.pexels.com/photos/776657/pexels-photo-776657.jpeg",
			Category: "social deduction", Votes: 9, CreatedAt: ts("2021-01-25T11:16:54.963Z"),
		},
		{
			Title: "One Night Ultimate Werewolf", Designer: "Akihisa Okui", Owner: "mallionaire",
			ReviewBody: "We couldn't find the werewolf!", ReviewImgURL: placeholderImg,
			Category: "social deduction", Votes: 5, CreatedAt: ts("2021-01-18T10:01:41.251Z"),
		},
		{
			Title: "A truly Quacking Game; Quacks of Quedlinburg", Designer: "Wolfgang Warsch", Owner: "mallionaire",
			ReviewBody: "Ever wish you could play a game where you brew potions and blow up cauldrons? Quacks of Quedlinburg lets you do both.",
			ReviewImgURL: "https://images.pexels.com/photos/279321/pexels-photo-279321.jpeg",
			Category: "social deduction", Votes: 10, CreatedAt: ts("2021-01-18T10:01:41.251Z"),
		},
		{
			Title: "Build you own tour de Yorkshire", Designer: "Asger Harding Granerud", Owner: "mallionaire",
			ReviewBody: "Cold rain pours on the faces of your team of cyclists, you pulled to the front of the pack early and now you're likely to be caught.",
			ReviewImgURL: "https://images.pexels.com/photos/258045/pexels-photo-258045.jpeg",
			Category: "social deduction", Votes: 10, CreatedAt: ts("2021-01-18T10:01:41.251Z"),
		},
		{
			Title: "That's just what an evil person would say!", Designer: "Fiona Lohoar", Owner: "mallionaire",
			ReviewBody: "If you've ever wanted to accuse your boss of being a monster, this is the game for you.",
			ReviewImgURL: "https://images.pexels.com/photos/220057/pexels-photo-220057.jpeg",
			Category: "social deduction", Votes: 8, CreatedAt: ts("2021-01-18T10:01:41.251Z"),
		},
		{
			Title: "Scythe; you're gonna need a bigger table!", Designer: "Jamey Stegmaier", Owner: "mallionaire",
			ReviewBody: "Spend 30 minutes just setting up all of the boards and pieces and you'll quickly realise this is not a game for small tables.",
			ReviewImgURL: "https://images.pexels.com/photos/4200740/pexels-photo-4200740.jpeg",
			Category: "social deduction", Votes: 100, CreatedAt: ts("2021-01-22T10:37:04.839Z"),
		},
		{
			Title: "Settlers of Catan: Don't Settle For Less", Designer: "Klaus Teuber", Owner: "mallionaire",
			ReviewBody: "You have stumbled across an uncharted island rich in natural resources, but you are not alone.",
			ReviewImgURL: "https://images.pexels.com/photos/1153929/pexels-photo-1153929.jpeg",
			Category: "social deduction", Votes: 16, CreatedAt: ts("1970-01-10T02:08:38.400Z"),
		},
	},
	Comments: []models.Comment{
		{Body: "I loved this game too!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: ts("2017-11-22T12:43:33.389Z")},
		{Body: "My dog loved this game too!", Votes: 13, Author: "mallionaire", ReviewID: 3, CreatedAt: ts("2021-01-18T10:09:05.410Z")},
		{Body: "I didn't know dogs could play games", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: ts("2021-01-18T10:09:48.110Z")},
		{Body: "EPIC board game!", Votes: 16, Author: "bainesface", ReviewID: 2, CreatedAt: ts("2017-11-22T12:36:03.389Z")},
		{Body: "Now this is a story all about how, board games turned my life upside down", Votes: 13, Author: "mallionaire", ReviewID: 2, CreatedAt: ts("2021-01-18T10:24:05.410Z")},
		{Body: "Not sure about dogs, but my cat likes to get involved with board games", Votes: 10, Author: "philippaclaire9", ReviewID: 3, CreatedAt: ts("2021-03-27T19:49:48.110Z")},
	},
}
