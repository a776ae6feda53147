package faker

// dataset holds the locale-specific value tables a Faker draws from.
type dataset struct {
	firstNames   []string
	lastNames    []string
	emailLocals  []string
	emailDomains []string
	streets      []string
	cities       []string
	regions      []string
	phoneFormat  string // '#' placeholders are replaced with digits
	words        []string
	sentences    []string
}

// datasets is keyed by canonical BCP 47 tag, matching supportedTags.
var datasets = map[string]*dataset{
	"en-US": {
		firstNames: []string{
			"John", "Jane", "Bob", "Alice", "Charlie", "Diana", "Edward", "Fiona",
			"George", "Hannah", "Isaac", "Julia", "Kevin", "Laura", "Michael", "Nora",
		},
		lastNames: []string{
			"Smith", "Doe", "Johnson", "Williams", "Brown", "Davis", "Miller", "Wilson",
			"Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White", "Harris", "Martin",
		},
		emailLocals: []string{
			"john", "jane", "bob", "alice", "charlie", "diana", "edward", "fiona",
		},
		emailDomains: []string{"example.com", "test.com", "mock.io", "demo.org"},
		streets: []string{
			"Main St", "Oak Ave", "Elm St", "Park Blvd", "Cedar Ln",
			"Maple Dr", "Pine Rd", "Lake Way",
		},
		cities: []string{
			"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
			"Seattle", "Denver", "Boston",
		},
		regions:     []string{"NY", "CA", "IL", "TX", "AZ", "WA", "CO", "MA"},
		phoneFormat: "+1-###-###-####",
		words: []string{
			"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "theta", "lambda",
			"sigma", "omega", "vector", "matrix", "kernel", "cipher", "quartz", "prism",
		},
		sentences: []string{
			"The quick brown fox jumps over the lazy dog.",
			"Lorem ipsum dolor sit amet.",
			"All systems report nominal status.",
			"The shipment arrived ahead of schedule.",
			"Customer feedback has been overwhelmingly positive.",
			"The warranty covers parts and labor for two years.",
			"Batteries are included in the retail package.",
			"Handle with care during transport.",
		},
	},
	"fa-IR": {
		firstNames: []string{
			"علی", "مریم", "رضا", "زهرا", "حسین", "فاطمه", "محمد", "سارا",
			"امیر", "نرگس", "مهدی", "لیلا", "کیان", "شیرین", "آرش", "نازنین",
		},
		lastNames: []string{
			"احمدی", "محمدی", "حسینی", "رضایی", "کریمی", "موسوی", "جعفری", "صادقی",
			"قاسمی", "نجفی", "هاشمی", "عباسی", "رحیمی", "سلطانی", "شریفی", "کاظمی",
		},
		emailLocals: []string{
			"ali", "maryam", "reza", "zahra", "hossein", "fatemeh", "mohammad", "sara",
		},
		emailDomains: []string{"example.ir", "test.ir", "mock.io", "demo.org"},
		streets: []string{
			"خیابان ولیعصر", "خیابان انقلاب", "خیابان آزادی", "بلوار کشاورز",
			"خیابان فردوسی", "خیابان شریعتی", "بلوار میرداماد", "خیابان حافظ",
		},
		cities: []string{
			"تهران", "مشهد", "اصفهان", "شیراز", "تبریز", "کرج", "قم", "اهواز",
		},
		regions: []string{
			"تهران", "خراسان رضوی", "اصفهان", "فارس",
			"آذربایجان شرقی", "البرز", "قم", "خوزستان",
		},
		phoneFormat: "+98-9##-###-####",
		words: []string{
			"کتاب", "میز", "صندلی", "چراغ", "ساعت", "کیف", "قلم", "دفتر",
			"فنجان", "بطری", "آینه", "فرش", "پنجره", "کلید", "جعبه", "سبد",
		},
		sentences: []string{
			"کالا در اسرع وقت ارسال می‌شود.",
			"کیفیت محصول مورد تایید است.",
			"گارانتی شامل قطعات و خدمات است.",
			"سفارش شما با موفقیت ثبت شد.",
			"رضایت مشتریان اولویت ماست.",
			"بسته‌بندی مقاوم در برابر ضربه است.",
			"موجودی انبار به‌روزرسانی شد.",
			"ارسال رایگان برای خریدهای بالا.",
		},
	},
}
