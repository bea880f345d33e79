package locale

import "golang.org/x/text/language"

// messages holds the site copy. Keys are shared by all languages.
// Messages are printf formats: a literal percent sign must be written as %%.
var messages = map[language.Tag]map[string]string{
	language.English: {
		"site.name":    "Tendas de Mozambique",
		"site.tagline": "High quality tarpaulins, tents and much more, made for the African sun",

		"nav.home":     "Home",
		"nav.whyUs":    "Why Choose Us",
		"nav.rental":   "Rental",
		"nav.contact":  "Contact",
		"nav.language": "Português",

		"page.home":    "Home",
		"page.contact": "Contact",
		"page.whyUs":   "Why Choose Us",
		"page.rental":  "Equipment Rental",
		"page.product": "Product %s",

		"hero.title":    "TENDAS DE MOZAMBIQUE",
		"hero.subtitle": "HIGH QUALITY TARPAULINS, TENTS AND MUCH MORE, MADE FOR THE AFRICAN SUN",
		"hero.cta":      "Explore Tents",

		"products.title":        "Premium Outdoor Tents",
		"products.subtitle":     "Explore our range of high-quality tents for camping, events, and outdoor adventures",
		"products.requestQuote": "Request Quote",

		"contact.title":    "Request a Tent Quote",
		"contact.subtitle": "Need a custom tent or have questions about our products? Send us a message and we will get back to you within 24 hours.",
		"contact.emailUs":  "Email Us",
		"contact.callUs":   "Call Us",
		"contact.name":     "Name",
		"contact.email":    "Email",
		"contact.message":  "Message",
		"contact.send":     "Send Message",

		"whyUs.subtitle":   "Tendas de Mozambique - Your trusted partner for high-quality tents and PVC products",
		"whyUs.heading":    "Crafting Excellence in Every Stitch",
		"whyUs.paragraph1": "A company based in Beira making tarpaulins, tents, carports, bakkie covers, truck frames and canopies, awnings, drop blinds and doing all general heavy duty canvas and PVC work.",
		"whyUs.paragraph2": "We make standard tents and custom tents, from the smallest dome tent to the largest party marquee or warehouse tent. Using only the best materials and designs, we are suppliers to many heavy duty users such as safari camps, long term construction camps, the military and the police.",
		"whyUs.paragraph3": "Tendas de Mozambique has a wide range of colours in material proven to stand up to the Mozambique sun.",
		"whyUs.ctaTitle":   "Give Us a Challenge",

		"rental.subtitle":          "High-quality tents, shade structures, and equipment for your events, camping trips, or commercial needs",
		"rental.whyRentWithUs":     "Why Rent With Us",
		"rental.premiumQuality":    "Premium quality equipment",
		"rental.flexiblePeriods":   "Flexible rental periods",
		"rental.professionalSetup": "Professional setup and takedown",
		"rental.contactForPricing": "Contact us for pricing and availability",

		"product.subtitle": "Product reference: %s",
		"product.details":  "Contact us for specifications, pricing and availability of this product.",

		"footer.allRightsReserved": "All rights reserved.",
	},
	language.Portuguese: {
		"site.name":    "Tendas de Moçambique",
		"site.tagline": "Lonas, tendas e muito mais de alta qualidade, feitas para o sol africano",

		"nav.home":     "Início",
		"nav.whyUs":    "Porquê Escolher-nos",
		"nav.rental":   "Aluguer",
		"nav.contact":  "Contacto",
		"nav.language": "English",

		"page.home":    "Início",
		"page.contact": "Contacto",
		"page.whyUs":   "Porquê Escolher-nos",
		"page.rental":  "Aluguer de Equipamento",
		"page.product": "Produto %s",

		"hero.title":    "TENDAS DE MOÇAMBIQUE",
		"hero.subtitle": "LONAS, TENDAS E MUITO MAIS DE ALTA QUALIDADE, FEITAS PARA O SOL AFRICANO",
		"hero.cta":      "Explorar Tendas",

		"products.title":        "Tendas Premium para Exterior",
		"products.subtitle":     "Explore a nossa gama de tendas de alta qualidade para camping, eventos e aventuras ao ar livre",
		"products.requestQuote": "Solicitar Orçamento",

		"contact.title":    "Solicitar Orçamento de Tenda",
		"contact.subtitle": "Precisa de uma tenda personalizada ou tem perguntas sobre os nossos produtos? Envie-nos uma mensagem e responderemos em 24 horas.",
		"contact.emailUs":  "O Nosso Email",
		"contact.callUs":   "Ligue para Nós",
		"contact.name":     "Nome",
		"contact.email":    "Email",
		"contact.message":  "Mensagem",
		"contact.send":     "Enviar Mensagem",

		"whyUs.subtitle":   "Tendas de Moçambique - O seu parceiro de confiança para tendas e produtos de PVC de alta qualidade",
		"whyUs.heading":    "Excelência em Cada Costura",
		"whyUs.paragraph1": "Uma empresa sediada na Beira que fabrica lonas, tendas, telheiros para carros, coberturas para carrinhas, estruturas e capotas para camiões, toldos, cortinas e realiza todos os trabalhos gerais de lona e PVC de alta resistência.",
		"whyUs.paragraph2": "Fabricamos tendas padrão e tendas personalizadas, desde a menor tenda de cúpula até à maior tenda de festa ou armazém. Utilizando apenas os melhores materiais e designs, somos fornecedores de muitos utilizadores de alta resistência, como acampamentos de safari, acampamentos de construção de longo prazo, militares e polícia.",
		"whyUs.paragraph3": "A Tendas de Moçambique tem uma ampla gama de cores em material comprovado para resistir ao sol de Moçambique.",
		"whyUs.ctaTitle":   "Dê-nos um Desafio",

		"rental.subtitle":          "Tendas, estruturas de sombra e equipamentos de alta qualidade para os seus eventos, acampamentos ou necessidades comerciais",
		"rental.whyRentWithUs":     "Porquê Alugar Connosco",
		"rental.premiumQuality":    "Equipamento de qualidade premium",
		"rental.flexiblePeriods":   "Períodos de aluguer flexíveis",
		"rental.professionalSetup": "Montagem e desmontagem profissional",
		"rental.contactForPricing": "Contacte-nos para preços e disponibilidade",

		"product.subtitle": "Referência do produto: %s",
		"product.details":  "Contacte-nos para especificações, preços e disponibilidade deste produto.",

		"footer.allRightsReserved": "Todos os direitos reservados.",
	},
}
