package content

import "github.com/3-lines-studio/landing/internal/core"

const (
	productName = "新型电磁驱动霍普金森杆动态力学性能测试系统"

	productDescription = `传统气动霍普金森杆那么难用，为什么不试试我们的产品呢？:

- 比它们测得准
- 比它们测得全
- 比它们测得了
- ...
- **新型电磁驱动霍普金森杆动态力学性能测试系统的时代就要来了，你还想要固步自封吗？**
`
)

// Default returns the built-in landing page content.
func Default() core.Site {
	return core.Site{
		Meta: core.PageMeta{
			Title:   productName,
			Icon:    "⭐",
			Layout:  core.LayoutCentered,
			Sidebar: core.SidebarCollapsed,
			Lang:    "zh-Hans",
		},
		Product: core.Product{
			Name:          productName,
			Tagline:       "产品介绍",
			Description:   productDescription,
			CheckoutURL:   "https://www.alipay.com/x/personal",
			CheckoutLabel: "👉 在线购买",
			Image:         "装置图1.png",
			ImageWidth:    450,
		},
		Sections: core.Sections{
			Features: "🚀 我们的特点",
			Demo:     "📺 演示视频",
			FAQ:      "🙋 答疑",
			Contact:  "📫 你现在还有疑问? 请马上联系我们!",
		},
		Features: []core.Feature{
			{
				Image:   "特点1_原理1.png",
				Heading: "我们使用电磁驱动",
				Body:    "包括发射筒、抗电磁干扰屏蔽壳、子弹装在发射筒中心的发射腔内，发射腔两端分别设置有三级电磁线圈的子弹加速通道，通过对各级电磁线圈加载不同电压，可由低至高逐级调节发射速度，使子弹以设定速度朝对应方向发射。",
			},
			{
				Image:   "特点1_双向拉压1.png",
				Heading: "我们可以实现双向拉压",
				Body:    "两套拉压同体霍普金森装置呈十字交叉布置，底座交汇处可设置缺口，避免相互干扰，储能电容柜控制两套拉压同体霍普金森装置，通过控制柜旋钮调节两套装置各级电磁线圈加载电压，两套装置发射速度是否相等均可自由设置，按下充电按钮，各级电容自动充入设定电压，充能结束后按下放电按钮，两套电磁发射装置精确同步发射，完成双向拉压实验。",
			},
			{
				Image:   "特点3_数控.png",
				Heading: "我们可以实现全数控操作",
				Body:    "在经过小型和大型电磁驱动装置研发，制成一套电压0-5000V连续可调的大型电磁驱动装置，将该电磁驱动技术与霍普金森杆实验技术相结合，研制出一套电磁驱动多级连续加载的拉压同体霍普金森杆装置以后，团队着力进行装置控制系统升级，最终制成全数控电磁驱动多级连续加载的拉压同体霍普金森杆装置。。",
			},
		},
		Video: core.Video{
			File:   "00.mp4",
			Format: "video/mp4",
			Start:  0,
		},
		FAQ: []core.FAQEntry{
			{Question: "你们的产品和现在的其他霍普金森杆有什么不同？", Answer: "我们的转置目前已经实现了全数控电磁驱动多级连续加载，并且实验效率与准确率远超同类产品。"},
			{Question: "你们定价多少？", Answer: "我们目前暂定60~300万，薄利多销，您可按需购买。"},
			{Question: "你们团队有多少人？", Answer: "我们是一个只有十余人小团队，但团队成员均为各个行业内的领军人物。"},
			{Question: "产品有什么权威背书吗？", Answer: "我们的产品收到了中国工程院院士任辉启院士的大力支持，有院士背书。"},
			{Question: "你们目前是什么商业模式？", Answer: "我们目前以销售转置为主，也兼顾维修仪器。"},
		},
		Contact: core.Contact{
			Relay:              core.DefaultFormRelay,
			Email:              "jcklee0010@gmail.com",
			Captcha:            false,
			NamePlaceholder:    "你的名字",
			EmailPlaceholder:   "你的电子邮箱",
			MessagePlaceholder: "你的疑问",
			SubmitLabel:        "发送 ✉",
		},
	}
}
