package catalog

// defaultPatterns lists the built-in intents in tie-break order.
var defaultPatterns = PatternTable{
	{Greeting, `\b(hello|hi|hey|good morning|good afternoon|good evening|hola|bonjour|guten tag|ciao|こんにちは|你好|안녕하세요|здравствуйте)\b`},
	{BusinessHours, `(hours|schedule|when.*open|when.*close|horario|heures d'ouverture|Öffnungszeiten|orari|営業時間|营业时间|영업 시간|часы работы)`},
	{ReturnPolicy, `(return|refund|exchange|devolver|remboursement|rückgabe|rimborso|返品|退货|환불|возврат)`},
	{ContactSupport, `(contact|support|help|email|phone|number|contacto|contacter|kontakt|contatto|連絡|联系|연락|контакт)`},
	{Goodbye, `\b(thank you|thanks|bye|goodbye|gracias|merci|danke|grazie|ありがとう|谢谢|감사합니다|спасибо)\b`},
}

func defaultPresets() Presets {
	return Presets{
		Greeting: {
			"en": "Hello! How can I help you today?",
			"es": "¡Hola! ¿Cómo puedo ayudarte hoy?",
			"fr": "Bonjour! Comment puis-je vous aider aujourd'hui?",
			"de": "Hallo! Wie kann ich Ihnen heute helfen?",
			"zh": "你好！今天我能帮你什么忙？",
			"ja": "こんにちは！今日はどのようにお手伝いできますか？",
			"ko": "안녕하세요! 오늘 무엇을 도와드릴까요?",
			"ru": "Здравствуйте! Чем я могу вам помочь сегодня?",
			"pt": "Olá! Como posso ajudá-lo hoje?",
			"it": "Ciao! Come posso aiutarti oggi?",
		},
		BusinessHours: {
			"en": "Our business hours are Monday to Friday, 9 AM to 6 PM (GMT).",
			"es": "Nuestro horario comercial es de lunes a viernes, de 9 a.m. a 6 p.m. (GMT).",
			"fr": "Nos heures d'ouverture sont du lundi au vendredi, de 9h à 18h (GMT).",
			"de": "Unsere Geschäftszeiten sind Montag bis Freitag, 9 bis 18 Uhr (GMT).",
			"zh": "我们的营业时间是周一至周五，上午9点至下午6点（GMT）。",
			"ja": "営業時間は月曜日から金曜日の午前9時から午後6時（GMT）です。",
			"ko": "영업 시간은 월요일부터 금요일까지, 오전 9시부터 오후 6시까지입니다 (GMT).",
			"ru": "Наш рабочий график: с понедельника по пятницу, с 9:00 до 18:00 (GMT).",
			"pt": "Nosso horário comercial é de segunda a sexta-feira, das 9h às 18h (GMT).",
			"it": "I nostri orari di lavoro sono dal lunedì al venerdì, dalle 9 alle 18 (GMT).",
		},
		ReturnPolicy: {
			"en": "You can return products within 30 days of purchase with the original receipt for a full refund.",
			"es": "Puede devolver productos dentro de los 30 días posteriores a la compra con el recibo original para obtener un reembolso completo.",
			"fr": "Vous pouvez retourner les produits dans les 30 jours suivant l'achat avec le reçu original pour un remboursement complet.",
			"de": "Sie können Produkte innerhalb von 30 Tagen nach dem Kauf mit der Originalquittung gegen volle Rückerstattung zurückgeben.",
			"zh": "您可以在购买后30天内持原始收据退货，获得全额退款。",
			"ja": "購入から30日以内に領収書原本をお持ちいただければ、全額返金で製品を返品することができます。",
			"ko": "원래 영수증으로 구매 후 30일 이내에 제품을 반품하시면 전액 환불해 드립니다.",
			"ru": "Вы можете вернуть товары в течение 30 дней с момента покупки с оригиналом чека для получения полного возмещения.",
			"pt": "Você pode devolver produtos dentro de 30 dias após a compra com o recibo original para reembolso total.",
			"it": "È possibile restituire i prodotti entro 30 giorni dall'acquisto con la ricevuta originale per un rimborso completo.",
		},
		ContactSupport: {
			"en": "You can reach our support team at support@example.com or call us at +1-800-123-4567.",
			"es": "Puede comunicarse con nuestro equipo de soporte en support@example.com o llamarnos al +1-800-123-4567.",
			"fr": "Vous pouvez contacter notre équipe de support à support@example.com ou nous appeler au +1-800-123-4567.",
			"de": "Sie können unser Support-Team unter support@example.com erreichen oder uns unter +1-800-123-4567 anrufen.",
			"zh": "您可以通过support@example.com联系我们的支持团队，或致电+1-800-123-4567。",
			"ja": "support@example.comでサポートチームに連絡するか、+1-800-123-4567までお電話ください。",
			"ko": "support@example.com으로 지원팀에 연락하거나 +1-800-123-4567로 전화하실 수 있습니다.",
			"ru": "Вы можете связаться с нашей службой поддержки по адресу support@example.com или позвонить нам по телефону +1-800-123-4567.",
			"pt": "Você pode entrar em contato com nossa equipe de suporte em support@example.com ou nos ligar em +1-800-123-4567.",
			"it": "Puoi contattare il nostro team di supporto all'indirizzo support@example.com o chiamarci al +1-800-123-4567.",
		},
		Goodbye: {
			"en": "Thank you for chatting with us today. Is there anything else I can help you with?",
			"es": "Gracias por chatear con nosotros hoy. ¿Hay algo más en lo que pueda ayudarte?",
			"fr": "Merci d'avoir discuté avec nous aujourd'hui. Y a-t-il autre chose dont vous avez besoin?",
			"de": "Vielen Dank für Ihren Chat mit uns heute. Gibt es noch etwas, womit ich Ihnen helfen kann?",
			"zh": "感谢您今天与我们聊天。还有什么我能帮您的吗？",
			"ja": "今日はチャットありがとうございました。他に何かお手伝いできることはありますか？",
			"ko": "오늘 채팅해 주셔서 감사합니다. 제가 도와드릴 일이 더 있을까요?",
			"ru": "Спасибо за общение с нами сегодня. Могу я еще чем-то вам помочь?",
			"pt": "Obrigado por conversar conosco hoje. Há mais alguma coisa em que eu possa ajudá-lo?",
			"it": "Grazie per aver chattato con noi oggi. C'è qualcos'altro in cui posso aiutarti?",
		},
	}
}

// Default returns the built-in catalog. It panics only if the built-in tables are
// inconsistent, which the package tests rule out.
func Default() *Catalog {
	c, err := New(defaultPatterns, defaultPresets())
	if err != nil {
		panic(err)
	}
	return c
}
