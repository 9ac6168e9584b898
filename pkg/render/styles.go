package render

import (
	"strings"

	"github.com/dmitrymomot/offerkit/pkg/theme"
	"github.com/dmitrymomot/offerkit/pkg/typography"
)

const offerStyles = `
    body{font-family:Arial,sans-serif;padding:10px;background:$background}
    .offer-container{max-width:500px;margin:0 auto;position:relative}
    .promotional-badge{position:absolute;top:-5px;right:-5px;background:$cta;color:#fff;padding:4px 8px;font-size:10px;font-weight:bold;border-radius:12px;z-index:10;transform:rotate(15deg)}
    .offer-header{background:#fff;border-radius:8px 8px 0 0;padding:12px 10px;text-align:center;box-shadow:0 2px 8px rgba(0,0,0,0.05)}
    .model-name{font-size:$headerSize;font-weight:$headerWeight;color:$vehicleTitle;margin-bottom:8px}
    .offer-details{display:flex;justify-content:center;align-items:center;gap:15px}
    .offer-option{text-align:center}
    .price{font-size:$priceSize;font-weight:$priceWeight;color:$offers;line-height:1.1}
    .price-detail{font-size:$descriptionSize;font-weight:$descriptionWeight;color:#777;margin-top:1px}
    .or{font-size:14px;font-weight:bold;color:#555}
    .loyalty-bonus{font-size:calc($priceSize * 0.8);font-weight:$priceWeight;color:$offers;margin-top:3px;line-height:1.1}

    .single-centered{flex:1;max-width:100%}
    .large-single{font-size:calc($priceSize * 1.3) !important}

    .offer-stack{display:flex;flex-direction:column;align-items:center;gap:8px}
    .offer-stack .offer-option{margin:0}

    .bonus-focus-layout{display:flex;flex-direction:column;align-items:center;gap:12px}
    .bonus-primary{order:1;margin-bottom:8px}
    .bonus-secondary{order:2;font-size:0.9em}
    .large-bonus{font-size:calc($priceSize * 1.1) !important;font-weight:$priceWeight;color:$offers;padding:8px 0}

    .stacked-layout{display:flex;flex-direction:column;align-items:center;gap:10px;max-width:300px;margin:0 auto}
    .stacked-item{width:100%;text-align:center;padding:6px 0;border-bottom:1px solid #eee}
    .stacked-item:last-child{border-bottom:none}

    .minimal-single-layout{display:flex;justify-content:center;align-items:center;min-height:80px}
    .minimal-large{font-size:calc($priceSize * 1.5) !important;font-weight:$priceWeight;line-height:1.2}

    .cta-container{text-align:center;background:#f0f0f0;padding:12px 10px;border-radius:0 0 8px 8px;box-shadow:0 2px 8px rgba(0,0,0,0.05)}
    .cta{display:inline-block;color:#fff;background:$cta;text-decoration:none;font-weight:$ctaWeight;transition:all .3s ease;box-shadow:0 3px 5px rgba(0,0,0,0.2);margin:2px}
    .cta:hover{transform:translateY(-2px);box-shadow:0 5px 10px rgba(0,0,0,0.3);background:$ctaHover}
    .cta:active{transform:translateY(1px);box-shadow:0 2px 3px rgba(0,0,0,0.3)}
    .cta .icon{margin-left:5px;transition:transform .3s ease}
    .cta:hover .icon{transform:translateX(3px)}

    .cta-small{padding:6px 12px;font-size:calc($ctaSize * 0.8)}
    .cta-medium{padding:10px 22px;font-size:$ctaSize}
    .cta-large{padding:14px 28px;font-size:calc($ctaSize * 1.2)}

    .cta-rounded{border-radius:25px}
    .cta-square{border-radius:4px}

    @keyframes pulse{0%{box-shadow:0 0 0 0 rgba(0,0,0,0.6)}70%{box-shadow:0 0 0 8px rgba(0,0,0,0)}100%{box-shadow:0 0 0 0 rgba(0,0,0,0)}}
    .pulse{animation:pulse 2s infinite}

    .dealer-info{margin-top:8px;font-size:11px;color:#666}
    .dealer-name{font-weight:bold}
    .dealer-location{margin-top:2px}
    .footer-text{margin-top:8px;font-size:12px;color:#555;font-style:italic}

    .disclaimer-container{margin-top:8px;text-align:center}
    .disclaimer-summary{font-size:11px;color:#666;cursor:pointer;transition:color .2s ease}
    .disclaimer-summary:hover{color:$cta}
    .disclaimer-toggle{display:inline-block;border:none;background:transparent;color:$cta;font-size:11px;cursor:pointer;margin-left:3px;font-weight:bold;text-decoration:underline}
    .disclaimer-full{display:none;font-size:10px;line-height:1.3;color:#666;text-align:left;padding:8px;border:1px solid #ddd;border-radius:6px;background:#fff;margin-top:8px;max-height:120px;overflow-y:auto}
    .disclaimer-full.active{display:block}

    @media(max-width:480px){
      .offer-details{flex-direction:column;gap:5px}
      .or{margin:3px 0}
      .offer-header{padding:10px 8px}
      .cta-container{padding:10px 8px}
      .offer-stack{gap:5px}
      .promotional-badge{font-size:9px;padding:3px 6px}
    }
`

// stylesheet fills the offer stylesheet. $ctaHover and $cta share a prefix,
// so longer tokens come first.
func stylesheet(p theme.Palette, f typography.CSS) string {
	return strings.NewReplacer(
		"$background", p.Background,
		"$vehicleTitle", p.VehicleTitle,
		"$offers", p.Offers,
		"$ctaHover", theme.Darken(p.CTA),
		"$ctaWeight", f.CTA.FontWeight(),
		"$ctaSize", f.CTA.FontSize(),
		"$cta", p.CTA,
		"$headerSize", f.Header.FontSize(),
		"$headerWeight", f.Header.FontWeight(),
		"$priceSize", f.Price.FontSize(),
		"$priceWeight", f.Price.FontWeight(),
		"$descriptionSize", f.Description.FontSize(),
		"$descriptionWeight", f.Description.FontWeight(),
	).Replace(offerStyles)
}

const collectionStyles = `
    body {
      font-family: Arial, sans-serif;
      background-color: #f8f8f8;
      margin: 0;
      padding: 20px 0;
    }
    .offers-collection {
      max-width: 1200px;
      margin: 0 auto;
      padding: 0 20px;
    }
    .collection-header {
      text-align: center;
      margin-bottom: 30px;
    }
    .collection-title {
      font-size: 24px;
      font-weight: bold;
      color: #333;
      margin-bottom: 8px;
    }
    .collection-subtitle {
      font-size: 14px;
      color: #666;
    }
`

const pulseScript = `
    const btns = document.querySelectorAll('.cta');
    btns.forEach(btn => {
      setTimeout(()=>btn.classList.remove('pulse'),5000);
      btn.addEventListener('mouseleave',()=>{
        setTimeout(()=>{
          btn.classList.add('pulse');
          setTimeout(()=>btn.classList.remove('pulse'),5000);
        },1000);
      });
    });
`
